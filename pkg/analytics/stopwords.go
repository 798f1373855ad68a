package analytics

// baseStopwords are English function words that carry no signal in policy
// statements. The set is shared by every Analytics instance and never written to.
var baseStopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "to": {}, "in": {}, "a": {}, "for": {},
	"is": {}, "on": {}, "that": {}, "with": {}, "as": {}, "by": {}, "at": {},
	"an": {}, "be": {}, "this": {}, "it": {},

	"were": {}, "was": {}, "are": {}, "from": {}, "or": {}, "but": {},
	"not": {}, "have": {}, "had": {}, "has": {},

	"their": {}, "they": {}, "them": {}, "its": {},

	"will": {}, "would": {}, "could": {}, "should": {}, "been": {},
}

// domainStopwords are terms that appear in every central-bank statement and
// would otherwise dominate the ranking.
var domainStopwords = []string{"meeting", "committee", "fed", "federal"}

