// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/loan-engine/pkg/datetime"
	"github.com/iwvelando/loan-engine/pkg/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rowDates resolves the calendar month label for every row. An empty or
// unparseable start date yields no labels and rows are identified by month
// number only.
func rowDates(startDate string, periods int) []string {
	if startDate == "" {
		return nil
	}
	dates := make([]string, periods)
	for i := 0; i < periods; i++ {
		date, err := datetime.OffsetDate(startDate, datetime.DateTimeLayout, i)
		if err != nil {
			return nil
		}
		dates[i] = date
	}
	return dates
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(schedule engine.Schedule, startDate string) {
	p := message.NewPrinter(language.English)
	dates := rowDates(startDate, len(schedule))

	fmt.Printf("--- Amortization schedule (%d periods) ---\n", len(schedule))
	if dates != nil {
		fmt.Printf("Month | Date    | Payment       | Principal     | Interest      | Balance\n")
		fmt.Printf("_____ | ____    | _______       | _________     | ________      | _______\n")
	} else {
		fmt.Printf("Month | Payment       | Principal     | Interest      | Balance\n")
		fmt.Printf("_____ | _______       | _________     | ________      | _______\n")
	}
	for i, row := range schedule {
		if dates != nil {
			_, _ = p.Printf("%5d | %s | $%.2f | $%.2f | $%.2f | $%.2f\n",
				row.Month, dates[i], row.Payment, row.Principal, row.Interest, row.Balance)
		} else {
			_, _ = p.Printf("%5d | $%.2f | $%.2f | $%.2f | $%.2f\n",
				row.Month, row.Payment, row.Principal, row.Interest, row.Balance)
		}
	}
	_, _ = p.Printf("Totals: principal $%.2f, interest $%.2f\n",
		schedule.TotalPrincipal(), schedule.TotalInterest())
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(schedule engine.Schedule, startDate string) {
	WriteCsv(os.Stdout, schedule, startDate)
}

// WriteCsv writes the schedule in comma-separated value format to the given
// writer.
func WriteCsv(w io.Writer, schedule engine.Schedule, startDate string) {
	dates := rowDates(startDate, len(schedule))

	if dates != nil {
		fmt.Fprintf(w, `"month","date","payment","principal","interest","balance"`)
	} else {
		fmt.Fprintf(w, `"month","payment","principal","interest","balance"`)
	}
	fmt.Fprintf(w, "\n")
	for i, row := range schedule {
		fmt.Fprintf(w, `"%d"`, row.Month)
		if dates != nil {
			fmt.Fprintf(w, `,"%s"`, dates[i])
		}
		fmt.Fprintf(w, `,"%.2f","%.2f","%.2f","%.2f"`,
			row.Payment, row.Principal, row.Interest, row.Balance)
		fmt.Fprintf(w, "\n")
	}
}
