package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gymd/internal/encoding"
	"github.com/MrJamesThe3rd/gymd/internal/membership"
)

const (
	colEmail   = "Email"
	colName    = "Name"
	colState   = "State"
	colCredits = "Credits"
	colStart   = "Start Date"
	colEnd     = "End Date"
)

// Record is one parsed roster row: who the member is and the membership
// they should be created with.
type Record struct {
	Email     string
	Name      string
	State     membership.State
	Credits   int
	StartDate time.Time
	EndDate   *time.Time
}

// Importer parses member rosters exported by legacy gym-management
// software. Files arrive in unpredictable encodings; rows before the header
// landmark (report titles, export timestamps) and footer rows are skipped.
type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]Record, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true    // Allow sloppy quotes if necessary

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	var records []Record

	headerFound := false

	// Column indices
	idxEmail := -1
	idxName := -1
	idxState := -1
	idxCredits := -1
	idxStart := -1
	idxEnd := -1

	for _, row := range rows {
		// 1. Search for the header landmark.
		if !headerFound {
			matches := 0

			for i, col := range row {
				switch strings.TrimSpace(col) {
				case colEmail:
					idxEmail = i
					matches++
				case colName:
					idxName = i
					matches++
				case colState:
					idxState = i
					matches++
				case colCredits:
					idxCredits = i
					matches++
				case colStart:
					idxStart = i
					matches++
				case colEnd:
					idxEnd = i
					matches++
				}
			}

			// Email and Start Date are the minimum to treat a row as the header.
			if idxEmail != -1 && idxStart != -1 && matches >= 2 {
				headerFound = true
			}

			continue
		}

		// 2. Parse data rows, skipping anything that doesn't look like one.
		if len(row) <= idxEmail || len(row) <= idxStart {
			continue
		}

		email := strings.TrimSpace(row[idxEmail])
		if email == "" || !strings.Contains(email, "@") {
			continue
		}

		start, err := parseDate(strings.TrimSpace(row[idxStart]))
		if err != nil {
			// Probably a footer row.
			continue
		}

		rec := Record{
			Email:     email,
			State:     membership.StateActive,
			StartDate: start,
		}

		if idxName != -1 && len(row) > idxName {
			rec.Name = strings.TrimSpace(row[idxName])
		}

		if idxState != -1 && len(row) > idxState {
			if st := membership.State(strings.ToLower(strings.TrimSpace(row[idxState]))); st.Valid() {
				rec.State = st
			}
		}

		if idxCredits != -1 && len(row) > idxCredits {
			rec.Credits = parseCredits(strings.TrimSpace(row[idxCredits]))
		}

		if idxEnd != -1 && len(row) > idxEnd {
			if end, err := parseDate(strings.TrimSpace(row[idxEnd])); err == nil {
				rec.EndDate = &end
			}
		}

		records = append(records, rec)
	}

	if !headerFound {
		return nil, fmt.Errorf("no roster header found")
	}

	return records, nil
}

// dateLayouts covers the formats seen across legacy exports.
var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseCredits tolerates decimal notation ("10.0") in the credits column;
// anything unparseable defaults to zero.
func parseCredits(s string) int {
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	return int(d.Round(0).IntPart())
}
