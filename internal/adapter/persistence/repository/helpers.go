package repository

import (
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
