package sensitive

// Rule is a single classification pattern. The rule set is plain data so it
// can be versioned and replaced without touching the matching logic.
type Rule struct {
	Pattern         string
	CaseInsensitive bool
}

// DefaultRules returns the ordered credential/secret indicator set.
// Literal tokens first, then structural patterns, then provider-specific
// secret formats (which match on exact casing).
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `password`, CaseInsensitive: true},
		{Pattern: `secret`, CaseInsensitive: true},
		{Pattern: `api.key`, CaseInsensitive: true},
		{Pattern: `token`, CaseInsensitive: true},
		{Pattern: `credential`, CaseInsensitive: true},
		{Pattern: `internal.only`, CaseInsensitive: true},
		{Pattern: `confidential`, CaseInsensitive: true},
		{Pattern: `aws_access_key`, CaseInsensitive: true},
		{Pattern: `aws_secret`, CaseInsensitive: true},
		{Pattern: `database.*connection`, CaseInsensitive: true},
		{Pattern: `admin.*password`, CaseInsensitive: true},
		{Pattern: `webhook\.site`, CaseInsensitive: true},
		{Pattern: `ghp_[A-Za-z0-9]{8,}`},
		{Pattern: `AKIA[0-9A-Z]{12,}`},
	}
}
