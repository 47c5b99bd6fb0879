package validation

import "fmt"

// Sanity bounds for warnings. Values beyond these are legal but usually
// indicate a unit mistake, e.g. an annual rate passed where a periodic rate
// was expected.
const (
	// HighPeriodicRate is the periodic rate above which a warning is issued.
	HighPeriodicRate = 0.24

	// LongTermPeriods is the term length above which a warning is issued.
	LongTermPeriods = 480
)

// ValidateLoanTerms returns advisory warnings for legal but suspicious loan
// terms. Hard input errors are the engine's responsibility.
func ValidateLoanTerms(principal, rate float64, periods int) []string {
	var warnings []string

	if principal == 0 {
		warnings = append(warnings, "principal is zero; all computed quantities will be zero")
	}
	if rate > HighPeriodicRate {
		warnings = append(warnings, fmt.Sprintf(
			"periodic rate %.4f exceeds %.2f; rates here are per period, not annual", rate, HighPeriodicRate))
	}
	if periods > LongTermPeriods {
		warnings = append(warnings, fmt.Sprintf(
			"term of %d periods exceeds %d; verify the term is expressed in payment periods", periods, LongTermPeriods))
	}

	return warnings
}
