package domain

import (
	"fmt"
	"math"
)

const (
	// MinOrderAmount is the smallest order the backend will create, in rupees.
	MinOrderAmount = 1
	// MinCheckoutAmount gates opening the checkout widget, in rupees.
	MinCheckoutAmount = 100
	// SubunitsPerUnit converts rupees to paise.
	SubunitsPerUnit = 100
	// MaxAmount caps any single donation, in rupees. Its paise value fits
	// both int64 and the DECIMAL(12,2) column of reported donations.
	MaxAmount = 100_000_000
)

// paiseTolerance absorbs float error when checking for at most two decimals.
const paiseTolerance = 1e-6

// hasWholePaise reports whether v has at most two decimal places.
func hasWholePaise(v float64) bool {
	scaled := v * SubunitsPerUnit
	return math.Abs(scaled-math.Round(scaled)) < paiseTolerance
}

var errTooLarge = ValidationError{Msg: fmt.Sprintf("Amount must not exceed ₹%d.", MaxAmount)}
var errFractionalPaise = ValidationError{Msg: "Amount must have at most two decimal places."}

func checkNumber(field string, amount *float64) (float64, error) {
	if amount == nil {
		return 0, ValidationError{Field: field, Msg: "is required"}
	}
	v := *amount
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ValidationError{Field: field, Msg: "must be a number"}
	}
	return v, nil
}

// ValidateOrderAmount enforces the order-creation minimum of ₹1.
func ValidateOrderAmount(amount *float64) (float64, error) {
	v, err := checkNumber("amount", amount)
	if err != nil || v < MinOrderAmount {
		return 0, ValidationError{Msg: "Amount is required and must be at least ₹1."}
	}
	if v > MaxAmount {
		return 0, errTooLarge
	}
	if !hasWholePaise(v) {
		return 0, errFractionalPaise
	}
	return v, nil
}

// ValidateCheckoutAmount enforces the higher minimum applied before checkout opens.
func ValidateCheckoutAmount(amount *float64) (float64, error) {
	v, err := checkNumber("amount", amount)
	if err != nil || v < MinCheckoutAmount {
		return 0, ValidationError{
			Msg: fmt.Sprintf("Please select or enter a valid donation amount (minimum ₹%d)", MinCheckoutAmount),
		}
	}
	if v > MaxAmount {
		return 0, errTooLarge
	}
	return v, nil
}

// ValidateReportedAmount requires a strictly positive amount.
func ValidateReportedAmount(amount *float64) (float64, error) {
	v, err := checkNumber("amount", amount)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ValidationError{Field: "amount", Msg: "must be a positive number"}
	}
	if v > MaxAmount {
		return 0, errTooLarge
	}
	if !hasWholePaise(v) {
		return 0, errFractionalPaise
	}
	return v, nil
}

// ToSubunits converts rupees to paise, rounding to the nearest paisa.
func ToSubunits(major float64) int64 {
	return int64(math.Round(major * SubunitsPerUnit))
}

// FromSubunits converts paise to rupees.
func FromSubunits(minor int64) float64 {
	return float64(minor) / SubunitsPerUnit
}
