package coach

import "github.com/mkoehler/sprechzeit/internal/textstats"

// causalConnectors are the German connectors a good "warum" answer uses.
var causalConnectors = map[string]bool{
	"weil":     true,
	"denn":     true,
	"deshalb":  true,
	"deswegen": true,
	"daher":    true,
	"darum":    true,
	"wegen":    true,
}

// HasCausalConnector reports whether the transcript contains a causal
// connector. Answers to "warum" questions are expected to carry one.
func HasCausalConnector(transcript string) bool {
	for _, tok := range textstats.Tokenize(transcript) {
		if causalConnectors[tok] {
			return true
		}
	}
	return false
}

// CausalFeedback returns a short German hint when a "warum" answer lacks
// a causal connector, or "" when the answer is fine.
func CausalFeedback(transcript string) string {
	if HasCausalConnector(transcript) {
		return ""
	}
	return "Tipp: Begründe deine Antwort mit „weil“ oder „deshalb“."
}
