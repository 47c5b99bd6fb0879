package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/loan-engine/pkg/engine"
)

func testSchedule(t *testing.T) engine.Schedule {
	t.Helper()
	schedule, err := engine.AmortizationTable(12000, 0, 12)
	if err != nil {
		t.Fatalf("AmortizationTable() error = %v", err)
	}
	return schedule
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	schedule := testSchedule(t)

	output := captureStdout(t, func() {
		PrettyFormat(schedule, "")
	})

	if !strings.Contains(output, "--- Amortization schedule (12 periods) ---") {
		t.Errorf("PrettyFormat missing header")
	}
	if !strings.Contains(output, "Month | Payment") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(output, "$1,000.00") {
		t.Errorf("PrettyFormat missing payment value")
	}
	if !strings.Contains(output, "Totals: principal $12,000.00") {
		t.Errorf("PrettyFormat missing totals line")
	}
}

func TestPrettyFormatWithDates(t *testing.T) {
	schedule := testSchedule(t)

	output := captureStdout(t, func() {
		PrettyFormat(schedule, "2025-01")
	})

	if !strings.Contains(output, "2025-01") {
		t.Errorf("PrettyFormat missing first row date")
	}
	if !strings.Contains(output, "2025-12") {
		t.Errorf("PrettyFormat missing last row date")
	}
	if !strings.Contains(output, "| Date") {
		t.Errorf("PrettyFormat missing date column header")
	}
}

func TestWriteCsv(t *testing.T) {
	schedule := testSchedule(t)

	var buf bytes.Buffer
	WriteCsv(&buf, schedule, "")
	output := buf.String()

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 13 {
		t.Fatalf("WriteCsv produced %d lines, expected header + 12 rows", len(lines))
	}
	if lines[0] != `"month","payment","principal","interest","balance"` {
		t.Errorf("WriteCsv header = %s", lines[0])
	}
	if lines[1] != `"1","1000.00","1000.00","0.00","11000.00"` {
		t.Errorf("WriteCsv first row = %s", lines[1])
	}
	if lines[12] != `"12","1000.00","1000.00","0.00","0.00"` {
		t.Errorf("WriteCsv last row = %s", lines[12])
	}
}

func TestWriteCsvWithDates(t *testing.T) {
	schedule := testSchedule(t)

	var buf bytes.Buffer
	WriteCsv(&buf, schedule, "2025-01")
	output := buf.String()

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if lines[0] != `"month","date","payment","principal","interest","balance"` {
		t.Errorf("WriteCsv header = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"2025-01"`) {
		t.Errorf("WriteCsv first row missing date: %s", lines[1])
	}
}

func TestCsvFormatPrintsToStdout(t *testing.T) {
	schedule := testSchedule(t)

	output := captureStdout(t, func() {
		CsvFormat(schedule, "")
	})

	if !strings.Contains(output, `"month","payment"`) {
		t.Errorf("CsvFormat missing CSV header on stdout")
	}
}

func TestRowDatesInvalidStart(t *testing.T) {
	if dates := rowDates("bogus", 3); dates != nil {
		t.Errorf("rowDates() = %v, expected nil for unparseable start date", dates)
	}
	if dates := rowDates("", 3); dates != nil {
		t.Errorf("rowDates() = %v, expected nil for empty start date", dates)
	}
}
