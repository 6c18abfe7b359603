package spans

import "testing"

func TestDates_FullDate(t *testing.T) {
	d := testDetector()
	tests := []struct {
		input     string
		formatted string
		month     string
		year      int
	}{
		{"Launch on March 3, 2026 at the summit", "March 3, 2026", "March", 2026},
		{"Launch on March 03, 2026", "March 3, 2026", "March", 2026}, // leading zero trimmed
		{"Sep. 14th, 2025 kickoff", "September 14, 2025", "September", 2025},
		{"due December 1 2024", "December 1, 2024", "December", 2024}, // comma optional
	}
	for _, tt := range tests {
		got := d.Dates(tt.input)
		if len(got) != 1 {
			t.Errorf("%q: expected 1 match, got %d: %v", tt.input, len(got), got)
			continue
		}
		m := got[0]
		if m.Kind != KindDateFull {
			t.Errorf("%q: expected kind %q, got %q", tt.input, KindDateFull, m.Kind)
		}
		if m.Formatted != tt.formatted {
			t.Errorf("%q: expected formatted %q, got %q", tt.input, tt.formatted, m.Formatted)
		}
		if m.Month != tt.month {
			t.Errorf("%q: expected month %q, got %q", tt.input, tt.month, m.Month)
		}
		if m.Year != tt.year {
			t.Errorf("%q: expected year %d, got %d", tt.input, tt.year, m.Year)
		}
	}
}

func TestDates_MonthYear(t *testing.T) {
	d := testDetector()
	got := d.Dates("roadmap review in March 2026")
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(got), got)
	}
	m := got[0]
	if m.Kind != KindDateMonthYear {
		t.Errorf("expected kind %q, got %q", KindDateMonthYear, m.Kind)
	}
	if m.Formatted != "March 2026" {
		t.Errorf("expected formatted %q, got %q", "March 2026", m.Formatted)
	}
	if m.Month != "March" || m.Year != 2026 {
		t.Errorf("expected March 2026, got %q %d", m.Month, m.Year)
	}
}

func TestDates_Quarter(t *testing.T) {
	d := testDetector()
	got := d.Dates("shipping in Q1 2026, retro in q3 2026")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %v", len(got), got)
	}
	if got[0].Formatted != "Q1 2026" || got[0].Kind != KindDateQuarter {
		t.Errorf("expected Q1 2026 quarter match, got %+v", got[0])
	}
	// Lower-case q is normalized to upper in the display form.
	if got[1].Formatted != "Q3 2026" {
		t.Errorf("expected %q, got %q", "Q3 2026", got[1].Formatted)
	}
	if got[0].Month != "" {
		t.Errorf("expected empty month for quarter match, got %q", got[0].Month)
	}
}

func TestDates_MixedPatternsInOneString(t *testing.T) {
	d := testDetector()
	got := d.Dates("announced June 1, 2024, GA in October 2025, sunset Q4 2026")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d: %v", len(got), got)
	}
	kinds := map[Kind]bool{}
	for _, m := range got {
		kinds[m.Kind] = true
	}
	for _, k := range []Kind{KindDateFull, KindDateMonthYear, KindDateQuarter} {
		if !kinds[k] {
			t.Errorf("expected a %q match, got %v", k, got)
		}
	}
}

func TestDates_NoFalsePositives(t *testing.T) {
	d := testDetector()
	for _, s := range []string{
		"we may ship soon",       // bare month word, no year
		"version 2026 of the doc", // bare year, no month
		"Q5 2026 is not a quarter",
	} {
		if got := d.Dates(s); len(got) != 0 {
			t.Errorf("%q: expected no matches, got %v", s, got)
		}
	}
}
