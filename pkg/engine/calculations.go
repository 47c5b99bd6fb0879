// Package engine implements closed-form amortization math for fixed-rate,
// fixed-term loans: periodic payment, maximum affordable principal, per-period
// interest/principal split, remaining balance, and full schedule generation.
//
// Rates are periodic, not annual; a 6% annual rate paid monthly arrives here
// as 0.005. A zero rate is a recognized straight-line case in every formula,
// not a division-by-zero fault. All functions are pure and safe for
// concurrent use.
package engine

import (
	"fmt"
	"math"
)

func validateTerms(principal, rate float64, periods int) error {
	if periods < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTerm, periods)
	}
	if rate < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	if principal < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidPrincipal, principal)
	}
	return nil
}

// Payment calculates the fixed periodic payment that fully amortizes
// principal over periods payments at the given periodic rate, using the
// standard annuity formula.
func Payment(principal, rate float64, periods int) (float64, error) {
	if err := validateTerms(principal, rate, periods); err != nil {
		return 0, err
	}
	return paymentValue(principal, rate, periods), nil
}

// paymentValue assumes already-validated inputs.
func paymentValue(principal, rate float64, periods int) float64 {
	if rate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(periods)
	}
	power := math.Pow(1.00+rate, float64(periods))
	discountFactor := (power - 1.00) / power
	return principal * rate / discountFactor
}

// MaxPrincipal is the algebraic inverse of Payment: it recovers the largest
// principal that a given periodic payment fully amortizes.
func MaxPrincipal(payment, rate float64, periods int) (float64, error) {
	if periods < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTerm, periods)
	}
	if rate < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}
	if payment < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidPayment, payment)
	}
	if rate == 0 {
		return payment * float64(periods), nil
	}
	power := math.Pow(1.00+rate, float64(periods))
	discountFactor := (power - 1.00) / power
	return payment * discountFactor / rate, nil
}

// RemainingBalance calculates the principal still outstanding immediately
// after the payment at the given period. Period 0 is loan origination (full
// principal outstanding); period == periods is the final payment (zero
// balance).
func RemainingBalance(principal, rate float64, period, periods int) (float64, error) {
	if err := validateTerms(principal, rate, periods); err != nil {
		return 0, err
	}
	if period < 0 || period > periods {
		return 0, fmt.Errorf("%w: period %d not in [0, %d]", ErrInvalidPeriod, period, periods)
	}
	return balanceValue(principal, rate, period, periods), nil
}

// balanceValue assumes already-validated inputs.
func balanceValue(principal, rate float64, period, periods int) float64 {
	payment := paymentValue(principal, rate, periods)
	if rate == 0 {
		return principal - payment*float64(period)
	}
	growth := math.Pow(1.00+rate, float64(period))
	return principal*growth - payment*((growth-1.00)/rate)
}

// InterestPayment calculates the interest portion of the payment due at the
// given period (1-based): the rate applied to the balance left after the
// previous payment. The interest portion shrinks every period as the balance
// amortizes.
func InterestPayment(principal, rate float64, period, periods int) (float64, error) {
	if err := validateTerms(principal, rate, periods); err != nil {
		return 0, err
	}
	if period < 1 || period > periods {
		return 0, fmt.Errorf("%w: period %d not in [1, %d]", ErrInvalidPeriod, period, periods)
	}
	return balanceValue(principal, rate, period-1, periods) * rate, nil
}

// PrincipalPayment calculates the principal portion of the payment due at the
// given period: the level payment less that period's interest.
func PrincipalPayment(principal, rate float64, period, periods int) (float64, error) {
	interest, err := InterestPayment(principal, rate, period, periods)
	if err != nil {
		return 0, err
	}
	return paymentValue(principal, rate, periods) - interest, nil
}
