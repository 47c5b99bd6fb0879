// Package constants provides shared constants for the loan-engine application.
package constants

// DateTimeLayout is the month layout used when labeling schedule rows with
// calendar dates.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Operation names accepted by the CLI.
const (
	OpPayment      = "payment"
	OpMaxPrincipal = "max-principal"
	OpInterest     = "interest"
	OpPrincipal    = "principal"
	OpBalance      = "balance"
	OpTable        = "table"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultCacheType is the schedule cache used when none is configured
	DefaultCacheType = "memory"
)
