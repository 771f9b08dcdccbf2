package wellness

import "strings"

// DefaultCrisisKeywords is the fixed phrase list screened on every
// outgoing message. Matching is a plain case-insensitive substring check
// with no negation handling; that limitation is deliberate.
var DefaultCrisisKeywords = []string{
	"kill myself",
	"end my life",
	"suicide",
	"suicidal",
	"want to die",
	"hurt myself",
	"self harm",
	"overdose",
	"can't go on",
	"no point living",
	"better off dead",
	"end it all",
	"harm myself",
}

// CrisisSupportMessage is the static reply shown in place of a model
// response when a message is intercepted.
const CrisisSupportMessage = "I'm concerned about what you've shared. Please use the resources I'm providing to get immediate support."

// CrisisResources is surfaced alongside the support message. If you're
// in crisis, contact emergency services or a crisis helpline immediately.
var CrisisResources = []string{
	"If you are in immediate danger, contact emergency services now",
	"Reach out to a crisis helpline for immediate support",
	"Connect with trusted friends, family, or support groups",
}

// CrisisDetector screens outgoing chat messages before any network
// call. It is purely local: it keeps working when the AI service is
// unreachable.
type CrisisDetector struct {
	keywords []string
}

// NewCrisisDetector builds a detector over the given phrases, falling
// back to DefaultCrisisKeywords when none are supplied. Phrases are
// lowered once up front.
func NewCrisisDetector(keywords []string) *CrisisDetector {
	if len(keywords) == 0 {
		keywords = DefaultCrisisKeywords
	}
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &CrisisDetector{keywords: lowered}
}

// Match reports whether the message contains any crisis phrase as a
// case-insensitive substring. Any single match is enough; there is no
// scoring.
func (d *CrisisDetector) Match(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range d.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
