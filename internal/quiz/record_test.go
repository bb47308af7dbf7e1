package quiz

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "A"},
		{" b ", "B"},
		{"C", "C"},
		{"42", "42"},
		{"  Taj Mahal  ", "Taj Mahal"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCheck_SingleLetter(t *testing.T) {
	r := &Record{
		Question: "Which planet is known as the Red Planet?",
		Answer:   "A",
		Options:  []string{"Mars", "Venus", "Jupiter", "Saturn"},
	}

	tests := []struct {
		input   string
		correct bool
	}{
		{"A", true},
		{"a", true},
		{" a ", true},
		{"B", false},
		{"Mars", false}, // option text is not accepted, letters only
		{"", false},
		{"AB", false},
	}

	for _, tt := range tests {
		v := r.Check(tt.input)
		if v.Correct != tt.correct {
			t.Errorf("Check(%q).Correct = %v, want %v", tt.input, v.Correct, tt.correct)
		}
		if v.Expected != "A" {
			t.Errorf("Check(%q).Expected = %q, want A", tt.input, v.Expected)
		}
		if v.Question != r.Question {
			t.Errorf("Check(%q).Question = %q, want the question text", tt.input, v.Question)
		}
	}
}

func TestCheck_FreeText(t *testing.T) {
	r := &Record{Question: "Capital of India?", Answer: "New Delhi"}

	if !r.Check("new delhi").Correct {
		t.Error("case-insensitive match should succeed")
	}
	if !r.Check("  New Delhi  ").Correct {
		t.Error("trimmed match should succeed")
	}
	if r.Check("Delhi").Correct {
		t.Error("substring must not match")
	}
}
