package core

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{" Employed", "Employed"},
		{"UNEMPLOYED", "Unemployed"},
		{"employed", "Employed"},
		{"Studying", "Studying"},
		{"employed - add to list", "Employed - add to list"},
		{"do not contact", "Do not contact"},
		{"  new graduate  ", "New graduate"},
		{"", ""},
		{"retired", "Retired"}, // unexpected values pass through cleaned
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeStatus_Idempotent(t *testing.T) {
	inputs := []string{" Employed", "UNEMPLOYED", "Business Owner", "retired", ""}
	for _, raw := range inputs {
		once := NormalizeStatus(raw)
		if twice := NormalizeStatus(once); twice != once {
			t.Errorf("NormalizeStatus not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestIsExpectedStatus(t *testing.T) {
	for _, s := range []string{"Employed", "Unemployed", "Studying", "New graduate", "Employed - add to list"} {
		if !IsExpectedStatus(s) {
			t.Errorf("IsExpectedStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"Retired", "employed", ""} {
		if IsExpectedStatus(s) {
			t.Errorf("IsExpectedStatus(%q) = true, want false", s)
		}
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		raw  string
		want Gender
	}{
		{"M", GenderMale},
		{"male", GenderMale},
		{"Man", GenderMale},
		{"Gentleman", GenderMale},
		{"F", GenderFemale},
		{"  Woman ", GenderFemale},
		{"Lady", GenderFemale},
		{"FEMALE", GenderFemale},
		{"", GenderUnresolved},
		{"x", GenderUnresolved},
		{"prefer not to say", GenderUnresolved},
	}

	for _, tt := range tests {
		if got := NormalizeGender(tt.raw); got != tt.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeGender_Idempotent(t *testing.T) {
	for _, raw := range []string{"M", "Lady", "unknown"} {
		once := NormalizeGender(raw)
		if twice := NormalizeGender(string(once)); once != GenderUnresolved && twice != once {
			t.Errorf("NormalizeGender not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestIsSaudi(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Saudi Arabia", true},
		{"saudi arabia", true},
		{" Saudi ", true},
		{"SAUDI", true},
		{"Egypt", false},
		{"", false},
		{"Saudi Arabian", false},
	}

	for _, tt := range tests {
		if got := IsSaudi(tt.value); got != tt.want {
			t.Errorf("IsSaudi(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
