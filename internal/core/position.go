package core

import (
	"regexp"
	"strings"
	"sync"

	"github.com/MaxHT0x/WebAlumni/internal/refdata"
)

// ClassifyPosition classifies a job title into a seniority category by
// evaluating the reference rule sets in order, first match wins. Rule order
// is what makes ambiguous titles deterministic: "Founder & CEO" hits the
// C-SUITE rules before the FOUNDER rules. Titles matching nothing, and
// blank or placeholder titles, classify as OTHER.
func ClassifyPosition(raw string) PositionCategory {
	title := strings.ToUpper(strings.TrimSpace(raw))
	if title == "" {
		return PositionOther
	}
	switch title {
	case "-", "N/A", "NA", "NONE", "NOT APPLICABLE", "UNKNOWN":
		return PositionOther
	}

	for _, rule := range positionRules() {
		for _, re := range rule.patterns {
			if re.MatchString(title) {
				return PositionCategory(rule.category)
			}
		}
	}
	return PositionOther
}

type compiledRule struct {
	category string
	patterns []*regexp.Regexp
}

var (
	rulesOnce     sync.Once
	compiledRules []compiledRule
)

// positionRules compiles the reference keyword tables into word-boundary
// patterns once. Word boundaries keep "IT DIRECTOR" matching while
// "DIRECTORY ADMINISTRATOR" does not.
func positionRules() []compiledRule {
	rulesOnce.Do(func() {
		for _, rule := range refdata.PositionRules {
			cr := compiledRule{category: rule.Category}
			for _, kw := range rule.Keywords {
				re := regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
				cr.patterns = append(cr.patterns, re)
			}
			compiledRules = append(compiledRules, cr)
		}
	})
	return compiledRules
}
