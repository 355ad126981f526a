package usecase

import (
	"shikkha/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Course revenue is split 60/40 between the educator and the platform. Book
// and cart sales go 100% to the platform.
var educatorCourseShare = decimal.NewFromFloat(0.6)

// ComputeShares splits a validated non-negative amount between the educator
// and the platform for the given purchase kind.
//
// The educator share is rounded to two decimals; the admin share is the exact
// remainder, so educatorShare + adminShare always equals amount.
func ComputeShares(amount float64, kind entities.PurchaseKind) (educatorShare, adminShare float64) {
	if kind != entities.PurchaseKindCourse {
		return 0, amount
	}

	total := decimal.NewFromFloat(amount)
	educator := total.Mul(educatorCourseShare).Round(2)
	admin := total.Sub(educator)

	educatorShare, _ = educator.Float64()
	adminShare, _ = admin.Float64()
	return educatorShare, adminShare
}

// toMinorUnits converts a major-unit amount to the integer minor units
// payment providers charge in.
func toMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
