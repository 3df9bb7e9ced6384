package normalize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"collapse whitespace", "Data   Science\t\nSpecialization", "Data Science Specialization"},
		{"edge artifacts", "• Machine Learning - ", "Machine Learning"},
		{"zero between letters", "Data Science Pr0gram", "Data Science Program"},
		{"repeated zeros", "Micr0s0ft Azure", "Microsoft Azure"},
		{"lowercase l before capital", "lT Essentials", "IT Essentials"},
		{"rn confusion whole word", "Prograrn Cornpletion", "Program Completion"},
		{"rn untouched in real words", "Machine Learning Internship", "Machine Learning Internship"},
		{"connectors lowercase", "CERTIFICATE OF COMPLETION IN DATA SCIENCE", "Certificate of Completion in Data Science"},
		{"leading connector capitalized", "of mice and men", "Of Mice and Men"},
		{"acronyms preserved", "Fundamentals of AI and ML", "Fundamentals of AI and ML"},
		{"trailing punctuation kept on word", "John Smith, Manager", "John Smith, Manager"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Data   Science Pr0gram",
		"• Certificate of Completion •",
		"Prograrn in Cornputer Science",
		"Fundamentals of AI",
		"lT Support Specialist",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCollapseSpace(t *testing.T) {
	got := CollapseSpace("  keeps   CASING\tand\nIDs: UC-123  ")
	want := "keeps CASING and IDs: UC-123"
	if got != want {
		t.Errorf("CollapseSpace() = %q, want %q", got, want)
	}
}
