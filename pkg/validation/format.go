// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-engine/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateOperation checks if the operation name is one the CLI supports.
func ValidateOperation(op string) error {
	switch op {
	case constants.OpPayment, constants.OpMaxPrincipal, constants.OpInterest,
		constants.OpPrincipal, constants.OpBalance, constants.OpTable:
		return nil
	}
	return fmt.Errorf("unknown operation %q; expected one of %s, %s, %s, %s, %s, %s",
		op, constants.OpPayment, constants.OpMaxPrincipal, constants.OpInterest,
		constants.OpPrincipal, constants.OpBalance, constants.OpTable)
}
