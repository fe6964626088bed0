package sensitive

import (
	"fmt"
	"regexp"
)

// Detector flags text that matches any of its configured rules.
// It is stateless after construction and safe for concurrent use.
type Detector struct {
	patterns []*regexp.Regexp
}

// NewDetector compiles the given rule set. Rule order is preserved, although
// matching short-circuits on the first hit.
func NewDetector(rules []Rule) (*Detector, error) {
	patterns := make([]*regexp.Regexp, 0, len(rules))
	for _, rule := range rules {
		expr := rule.Pattern
		if rule.CaseInsensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid sensitive pattern %q: %w", rule.Pattern, err)
		}
		patterns = append(patterns, re)
	}
	return &Detector{patterns: patterns}, nil
}

// NewDefaultDetector builds a Detector from DefaultRules. The default set is
// known-good, so compilation cannot fail.
func NewDefaultDetector() *Detector {
	d, err := NewDetector(DefaultRules())
	if err != nil {
		panic(err)
	}
	return d
}

// ContainsSensitive reports whether content matches at least one rule.
// Empty content never matches.
func (d *Detector) ContainsSensitive(content string) bool {
	if content == "" {
		return false
	}
	for _, re := range d.patterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}
