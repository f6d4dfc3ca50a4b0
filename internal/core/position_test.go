package core

import "testing"

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		raw  string
		want PositionCategory
	}{
		{"CEO", PositionCSuite},
		{"Chief Executive Officer", PositionCSuite},
		{"cfo", PositionCSuite},
		{"President", PositionCSuite},
		{"IT Director", PositionDirector},
		{"Managing Director", PositionDirector},
		{"Head of Marketing", PositionDirector},
		{"Vice President", PositionVP},
		{"VP of Sales", PositionVP},
		{"SVP", PositionVP},
		{"Founder", PositionFounder},
		{"Co-Founder", PositionFounder},
		{"Owner", PositionFounder},
		{"Software Engineer", PositionOther},
		{"Accountant", PositionOther},
		{"", PositionOther},
		{"-", PositionOther},
		{"N/A", PositionOther},
	}

	for _, tt := range tests {
		if got := ClassifyPosition(tt.raw); got != tt.want {
			t.Errorf("ClassifyPosition(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

// Titles that satisfy several rule sets must resolve by rule order.
func TestClassifyPosition_RuleOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want PositionCategory
	}{
		{"Founder & CEO", PositionCSuite},
		{"Owner and Managing Director", PositionDirector},
		{"VP & Co-Founder", PositionVP},
	}

	for _, tt := range tests {
		if got := ClassifyPosition(tt.raw); got != tt.want {
			t.Errorf("ClassifyPosition(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

// Keyword matching respects word boundaries: "DIRECTORY" must not match the
// DIRECTOR rule.
func TestClassifyPosition_WordBoundaries(t *testing.T) {
	tests := []struct {
		raw  string
		want PositionCategory
	}{
		{"Directory Administrator", PositionOther},
		{"Vice Presidential Aide", PositionOther},
		{"Homeowner Liaison", PositionOther},
	}

	for _, tt := range tests {
		if got := ClassifyPosition(tt.raw); got != tt.want {
			t.Errorf("ClassifyPosition(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
