package core

import (
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/refdata"
)

// NormalizeStatus maps a raw Current Status value to its canonical form:
// trimmed, case-folded, first letter capitalized. Values outside the expected
// vocabulary pass through in cleaned form; the Validator flags them, not this
// function. Canonical inputs come back unchanged.
func NormalizeStatus(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

// NormalizeGender resolves a raw gender value through the alias table.
// Anything it cannot resolve is GenderUnresolved; it never fails.
func NormalizeGender(raw string) Gender {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := refdata.GenderAliases[key]; ok {
		return Gender(canonical)
	}
	return GenderUnresolved
}

// knownStatuses is the expected vocabulary keyed by canonical form.
var knownStatuses = func() map[string]bool {
	m := make(map[string]bool, len(refdata.ExpectedStatuses))
	for _, s := range refdata.ExpectedStatuses {
		m[NormalizeStatus(s)] = true
	}
	return m
}()

// IsExpectedStatus reports whether a canonical status belongs to the expected
// vocabulary.
func IsExpectedStatus(canonical string) bool {
	return knownStatuses[canonical]
}

// employedBucket is the set of canonical statuses rolled into the "Employed"
// bucket of employment breakdowns.
var employedBucket = func() map[string]bool {
	m := make(map[string]bool, len(refdata.EmployedStatuses))
	for _, s := range refdata.EmployedStatuses {
		m[NormalizeStatus(s)] = true
	}
	return m
}()

// IsSaudi reports whether a nationality value counts as Saudi. Comparison is
// exact after trimming, case-insensitive, against the reference value set.
func IsSaudi(nationality string) bool {
	n := strings.TrimSpace(nationality)
	for _, v := range refdata.SaudiNationalityValues {
		if strings.EqualFold(n, v) {
			return true
		}
	}
	return false
}
