package normalize

import "testing"

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso passthrough", "2023-06-19", "2023-06-19"},
		{"ymd slashes", "2023/6/9", "2023-06-09"},
		{"ymd dots", "2023.06.19", "2023-06-19"},
		{"numeric month first", "06/19/2023", "2023-06-19"},
		{"numeric day first disambiguated", "19/06/2023", "2023-06-19"},
		{"numeric dashes", "6-19-2023", "2023-06-19"},
		{"month name", "June 19, 2023", "2023-06-19"},
		{"month abbrev with dot", "Jun. 19 2023", "2023-06-19"},
		{"ordinal suffix", "June 19th, 2023", "2023-06-19"},
		{"day first prose", "19 June 2023", "2023-06-19"},
		{"ordinal of form", "19th of June, 2023", "2023-06-19"},
		{"lowercase month", "june 19, 2023", "2023-06-19"},
		{"surrounding whitespace", "  2023-06-19  ", "2023-06-19"},
		{"unknown month name", "Febtober 1, 2023", ""},
		{"impossible calendar date", "2023-02-30", ""},
		{"both components above twelve", "13/13/2023", ""},
		{"free text", "issued last summer", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.in); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Canonical output must itself parse back to the same canonical form.
func TestDateRoundTrip(t *testing.T) {
	inputs := []string{"June 19, 2023", "19/06/2023", "2023/6/9", "1st of January, 2020"}
	for _, in := range inputs {
		first := Date(in)
		if first == "" {
			t.Fatalf("Date(%q) unexpectedly empty", in)
		}
		if second := Date(first); second != first {
			t.Errorf("Date(%q) round-trip: %q then %q", in, first, second)
		}
	}
}
