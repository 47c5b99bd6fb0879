package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// Row holds the values for one period of an amortization schedule.
type Row struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// Schedule is a full amortization schedule ordered by ascending month, one
// row per payment period.
type Schedule []Row

// TotalInterest sums the interest column of the schedule.
func (s Schedule) TotalInterest() float64 {
	total := 0.00
	for _, row := range s {
		total += row.Interest
	}
	return total
}

// TotalPrincipal sums the principal column of the schedule.
func (s Schedule) TotalPrincipal() float64 {
	total := 0.00
	for _, row := range s {
		total += row.Principal
	}
	return total
}

// ScheduleGenerator provides utilities for generating loan amortization schedules
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan by
// evaluating the payment decomposition and remaining balance at every period
// of the term.
func (g *ScheduleGenerator) GenerateSchedule(principal, rate float64, periods int) (Schedule, error) {
	if err := validateTerms(principal, rate, periods); err != nil {
		return nil, err
	}

	payment := paymentValue(principal, rate, periods)
	g.logger.Debug(fmt.Sprintf("amortizing %.2f over %d periods with payment %.2f",
		principal, periods, payment),
		zap.String("op", "engine.GenerateSchedule"),
		zap.Float64("rate", rate),
	)

	schedule := make(Schedule, periods)
	for month := 1; month <= periods; month++ {
		interest := balanceValue(principal, rate, month-1, periods) * rate
		row := Row{
			Month:     month,
			Payment:   payment,
			Principal: payment - interest,
			Interest:  interest,
			Balance:   balanceValue(principal, rate, month, periods),
		}
		if month == periods {
			// We will get machine error otherwise so just set to 0.
			row.Balance = 0.00
		}
		schedule[month-1] = row
	}

	return schedule, nil
}

// AmortizationTable builds a full schedule without debug logging.
func AmortizationTable(principal, rate float64, periods int) (Schedule, error) {
	return NewScheduleGenerator(nil).GenerateSchedule(principal, rate, periods)
}
