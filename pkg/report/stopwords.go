package report

// stopwords is a set of high-frequency English words that can be filtered out
// of the rendered word-frequency table. Filtering is display-only; the
// underlying word table always counts every alphabetic token.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {},
	"against": {}, "all": {}, "am": {}, "an": {}, "and": {}, "any": {},
	"are": {}, "as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "cannot": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {},
	"down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "even": {}, "ever": {},
	"every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {},
	"her": {}, "here": {}, "hers": {}, "herself": {}, "him": {},
	"himself": {}, "his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {},

	"just": {},

	"less": {}, "like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "me": {},
	"might": {}, "more": {}, "most": {}, "much": {}, "must": {},
	"my": {}, "myself": {},

	"neither": {}, "never": {}, "no": {}, "nor": {}, "not": {},
	"now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "ours": {}, "ourselves": {},
	"out": {}, "over": {}, "own": {},

	"per": {},

	"rather": {},

	"same": {}, "she": {}, "should": {}, "since": {}, "so": {},
	"some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"thus": {}, "to": {}, "too": {}, "toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "well": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "whether": {}, "which": {}, "while": {},
	"who": {}, "whom": {}, "whose": {}, "why": {}, "will": {},
	"with": {}, "within": {}, "without": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}

// IsStopword reports whether a normalized word is in the stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
