package core

import (
	"strings"

	"github.com/MaxHT0x/WebAlumni/internal/refdata"
)

// emptyPatternCategories maps each placeholder cell value to its classified
// EmployerCategory. Built once from the reference tables.
var emptyPatternCategories = func() map[string]EmployerCategory {
	byLabel := map[string]EmployerCategory{
		"COMPLETELY EMPTY": EmployerEmpty,
		"PLACEHOLDER":      EmployerPlaceholder,
		"CONFIDENTIAL":     EmployerConfidential,
		"OTHERS":           EmployerUnknown,
		"NOT WORKING":      EmployerUnknown,
	}
	m := make(map[string]EmployerCategory)
	for label, patterns := range refdata.EmptyWorkplacePatterns {
		cat, ok := byLabel[label]
		if !ok {
			cat = EmployerUnknown
		}
		for _, p := range patterns {
			m[p] = cat
		}
	}
	return m
}()

// NormalizeEmployer resolves a raw workplace value to a canonical employer
// name and category.
//
// Blank values and known placeholder patterns short-circuit into a non-VALID
// category with an empty name. Otherwise the value is uppercased, corporate
// suffix words are stripped, and the alias table is consulted; names the
// table does not know become their own canonical form. The function is total
// and idempotent on canonical names.
func NormalizeEmployer(raw string) (string, EmployerCategory) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if cat, ok := emptyPatternCategories[name]; ok {
		return "", cat
	}
	// TrimSpace collapses the all-whitespace patterns into "".
	if name == "" {
		return "", EmployerEmpty
	}

	// Alias lookup before suffix stripping so entries like "SNB CAPITAL"
	// resolve as written.
	if canonical, ok := refdata.CompanyAliases[name]; ok {
		return canonical, EmployerValid
	}
	// Canonical names stay fixed under renormalization even when they end
	// in a suffix word, e.g. "BOSTON CONSULTING GROUP".
	if canonicalEmployers[name] {
		return name, EmployerValid
	}

	stripped := stripCompanySuffixes(name)
	if canonical, ok := refdata.CompanyAliases[stripped]; ok {
		return canonical, EmployerValid
	}
	if canonical, ok := matchKeywordRule(stripped); ok {
		return canonical, EmployerValid
	}
	// Stripping must not land on a placeholder word: "OTHER GROUP" keeps
	// its suffix rather than collapsing into the OTHERS pattern, so the
	// returned name renormalizes to itself.
	if _, ok := emptyPatternCategories[stripped]; ok {
		return name, EmployerValid
	}
	return stripped, EmployerValid
}

// matchKeywordRule resolves free-text employer variants whose keywords all
// appear in the name. Rule canonicals contain their own keywords, so matches
// are stable under renormalization.
func matchKeywordRule(name string) (string, bool) {
	for _, rule := range refdata.CompanyKeywordRules {
		all := true
		for _, kw := range rule.Keywords {
			if !strings.Contains(name, kw) {
				all = false
				break
			}
		}
		if all {
			return rule.Canonical, true
		}
	}
	return "", false
}

// canonicalEmployers is the set of alias-table and keyword-rule target names.
var canonicalEmployers = func() map[string]bool {
	m := make(map[string]bool, len(refdata.CompanyAliases))
	for _, canonical := range refdata.CompanyAliases {
		m[canonical] = true
	}
	for _, rule := range refdata.CompanyKeywordRules {
		m[rule.Canonical] = true
	}
	return m
}()

// stripCompanySuffixes removes corporate suffix words from the trailing
// tokens of a name, repeating until no suffix remains, then tidies trailing
// punctuation.
func stripCompanySuffixes(name string) string {
	for {
		trimmed := strings.TrimRight(name, " .,")
		matched := false
		for _, word := range refdata.CompanySuffixes {
			if strings.HasSuffix(trimmed, " "+word) {
				name = strings.TrimSpace(trimmed[:len(trimmed)-len(word)-1])
				matched = true
				break
			}
		}
		if !matched {
			return trimmed
		}
	}
}
