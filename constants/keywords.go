package constants

// KeywordTableVersion tracks revisions of the classifier keyword tables below.
// Bump it whenever a keyword is added or removed so downstream result files
// can be traced back to the vocabulary that produced them.
const KeywordTableVersion = 1

// CircuitTableKeywords mark a table header as circuit-like.
var CircuitTableKeywords = []string{"circuit", "breaker", "load", "amp", "pole"}

// CircuitIdentityKeywords and BreakerLoadKeywords locate the header row:
// the header is the row whose combined text carries one keyword from each set.
var (
	CircuitIdentityKeywords = []string{"circuit", "ckt"}
	BreakerLoadKeywords     = []string{"breaker", "load", "trip"}
)

// RevisionTableKeywords mark a table header as a revision-history block.
var RevisionTableKeywords = []string{"revision", "rev", "date", "description", "by"}

// PanelScheduleNameKeywords drive filename-based routing: a document is sent
// into the extraction pipeline only when its filename matches.
var PanelScheduleNameKeywords = []string{"panel schedule", "panel-schedule", "panel_schedule", "panelboard", "pnl"}
