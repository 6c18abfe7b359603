package spans

import (
	"fmt"
	"strconv"
	"strings"
)

// DateMatch is a date span with its parsed fields. Year is 0 when no
// valid year parsed; such records sort last in deck-wide ordering.
type DateMatch struct {
	Match
	Formatted string
	Month     string // full month name; empty for quarter matches
	Year      int
}

var monthNames = map[string]string{
	"jan": "January", "feb": "February", "mar": "March", "apr": "April",
	"may": "May", "jun": "June", "jul": "July", "aug": "August",
	"sep": "September", "oct": "October", "nov": "November", "dec": "December",
}

// fullMonthName canonicalizes a matched month token (full name or
// abbreviation, any case) to its full name.
func fullMonthName(token string) string {
	key := strings.ToLower(token)
	if len(key) > 3 {
		key = key[:3]
	}
	return monthNames[key]
}

// Dates finds date spans in s, running the three patterns most-specific
// first: full month-day-year, then month-year, then quarter-year. A
// month-year candidate overlapping an already-recorded full date span is
// dropped so the shorter pattern cannot swallow part of the longer one.
func (d *Detector) Dates(s string) []DateMatch {
	var out []DateMatch

	for _, loc := range d.fullDateRe.FindAllStringSubmatchIndex(s, -1) {
		month := fullMonthName(s[loc[2]:loc[3]])
		day := s[loc[4]:loc[5]]
		year := atoiOrZero(s[loc[6]:loc[7]])
		out = append(out, DateMatch{
			Match:     Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]], Kind: KindDateFull},
			Formatted: fmt.Sprintf("%s %s, %d", month, strings.TrimLeft(day, "0"), year),
			Month:     month,
			Year:      year,
		})
	}
	fullCount := len(out)

	for _, loc := range d.monthYearRe.FindAllStringSubmatchIndex(s, -1) {
		cand := Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]], Kind: KindDateMonthYear}
		overlapped := false
		for _, f := range out[:fullCount] {
			if cand.Overlaps(f.Match) {
				overlapped = true
				break
			}
		}
		if overlapped {
			continue
		}
		month := fullMonthName(s[loc[2]:loc[3]])
		year := atoiOrZero(s[loc[4]:loc[5]])
		out = append(out, DateMatch{
			Match:     cand,
			Formatted: fmt.Sprintf("%s %d", month, year),
			Month:     month,
			Year:      year,
		})
	}

	for _, loc := range d.quarterRe.FindAllStringSubmatchIndex(s, -1) {
		year := atoiOrZero(s[loc[4]:loc[5]])
		out = append(out, DateMatch{
			Match:     Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]], Kind: KindDateQuarter},
			Formatted: fmt.Sprintf("Q%s %d", s[loc[2]:loc[3]], year),
			Year:      year,
		})
	}

	return out
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
