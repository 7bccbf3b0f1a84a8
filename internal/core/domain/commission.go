package domain

import (
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits of the currency minor unit.
const MoneyPlaces = 2

var (
	// SaleCommissionRate is the admin share of every approved sale.
	SaleCommissionRate = decimal.RequireFromString("0.10")
	// WithdrawalCommissionRate is the admin fee on every approved withdrawal.
	WithdrawalCommissionRate = decimal.RequireFromString("0.05")
)

// Split is the result of dividing a monetary event between admin and vendor.
// Admin + Vendor always equals Gross exactly.
type Split struct {
	Gross  decimal.Decimal `json:"gross"`
	Admin  decimal.Decimal `json:"admin"`
	Vendor decimal.Decimal `json:"vendor"`
}

// SplitSale divides a sale amount 10% admin / 90% vendor.
func SplitSale(amount decimal.Decimal) Split {
	return splitBy(amount, SaleCommissionRate)
}

// SplitWithdrawal divides a withdrawal amount into a 5% admin fee and the
// 95% net paid to the vendor.
func SplitWithdrawal(amount decimal.Decimal) Split {
	return splitBy(amount, WithdrawalCommissionRate)
}

// splitBy rounds the admin share half-up to the minor unit and gives the
// remainder to the vendor so no cent is created or lost.
func splitBy(amount, rate decimal.Decimal) Split {
	admin := amount.Mul(rate).Round(MoneyPlaces)
	return Split{
		Gross:  amount,
		Admin:  admin,
		Vendor: amount.Sub(admin),
	}
}

// ValidAmount reports whether d is a positive amount expressible in the
// currency minor unit.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Round(MoneyPlaces))
}

// ParseAmount parses a decimal string and checks it with ValidAmount.
func ParseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, ValidAmount(d)
}
