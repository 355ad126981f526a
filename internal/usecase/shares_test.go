package usecase

import (
	"testing"

	"shikkha/internal/domain/entities"
)

func TestComputeShares_Course(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		educator, admin := ComputeShares(1000, entities.PurchaseKindCourse)
		if educator != 600 {
			t.Fatalf("expected educator share 600, got %v", educator)
		}
		if admin != 400 {
			t.Fatalf("expected admin share 400, got %v", admin)
		}
	})

	t.Run("rounding keeps the sum exact", func(t *testing.T) {
		cases := []float64{0.01, 0.1, 1, 9.99, 19.99, 33.33, 49.95, 101.01, 249.50}
		for _, amount := range cases {
			educator, admin := ComputeShares(amount, entities.PurchaseKindCourse)
			if educator+admin != amount {
				t.Fatalf("amount %v: shares %v + %v != %v", amount, educator, admin, amount)
			}
		}
	})

	t.Run("educator share rounded to two decimals", func(t *testing.T) {
		// 60% of 33.33 is 19.998; must round to 20.00.
		educator, admin := ComputeShares(33.33, entities.PurchaseKindCourse)
		if educator != 20.00 {
			t.Fatalf("expected educator share 20.00, got %v", educator)
		}
		if admin != 13.33 {
			t.Fatalf("expected admin share 13.33, got %v", admin)
		}
	})

	t.Run("zero amount", func(t *testing.T) {
		educator, admin := ComputeShares(0, entities.PurchaseKindCourse)
		if educator != 0 || admin != 0 {
			t.Fatalf("expected zero shares, got %v and %v", educator, admin)
		}
	})
}

func TestComputeShares_NonCourse(t *testing.T) {
	for _, kind := range []entities.PurchaseKind{entities.PurchaseKindBook, entities.PurchaseKindCart} {
		educator, admin := ComputeShares(59.90, kind)
		if educator != 0 {
			t.Fatalf("kind %s: expected no educator share, got %v", kind, educator)
		}
		if admin != 59.90 {
			t.Fatalf("kind %s: expected full admin share 59.90, got %v", kind, admin)
		}
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{0.01, 1},
		{1, 100},
		{19.99, 1999},
		{29.9, 2990},
		{1000, 100000},
	}
	for _, c := range cases {
		if got := toMinorUnits(c.amount); got != c.want {
			t.Fatalf("toMinorUnits(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}
