package textstats

import "sort"

// stopwordsDE is a deliberately small diagnostic stop-word set.
var stopwordsDE = map[string]struct{}{
	"der": {}, "die": {}, "das": {}, "ein": {}, "eine": {}, "einer": {}, "eines": {},
	"und": {}, "oder": {}, "aber": {}, "auch": {}, "zu": {},
	"im": {}, "in": {}, "am": {}, "an": {}, "auf": {}, "aus": {}, "mit": {}, "von": {}, "für": {},
	"dass": {}, "den": {}, "dem": {}, "des": {},
	"ist": {}, "sind": {}, "war": {}, "waren": {}, "wird": {}, "werden": {}, "wurde": {},
	"nicht": {}, "noch": {},
	"als": {}, "wie": {}, "was": {}, "wo": {}, "wer": {}, "wenn": {}, "weil": {},
	"bei": {}, "bis": {}, "nach": {}, "vor": {}, "über": {}, "unter": {},
	"gegen": {}, "um": {}, "sich": {}, "es": {}, "er": {}, "sie": {}, "wir": {},
	"ihr": {}, "ich": {}, "du": {}, "man": {},
}

// IsStopword reports whether w is in the fixed closed stop-word set.
func IsStopword(w string) bool {
	_, ok := stopwordsDE[w]
	return ok
}

// oldFormSuffixes flag archaic/adjective-heavy forms not worth learning.
var oldFormSuffixes = []string{"ste", "sten", "tem", "ten", "ter", "tes"}

// SuggestTargetTerms picks up to k learnable words from the source text.
// Rare words score higher, words missing from the spoken retell get a
// learning bonus, verb-like -en endings a slight one.
func SuggestTargetTerms(sourceText, spokenText string, k int) []string {
	if k <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, w := range Tokenize(sourceText) {
		if len([]rune(w)) < 5 || IsStopword(w) || hasOldFormSuffix(w) {
			continue
		}
		counts[w]++
	}
	if len(counts) == 0 {
		return nil
	}

	spoken := make(map[string]struct{})
	for _, w := range Tokenize(spokenText) {
		spoken[w] = struct{}{}
	}

	type scored struct {
		score float64
		word  string
	}
	all := make([]scored, 0, len(counts))
	for w, freq := range counts {
		score := 1.0 / float64(freq)
		if _, said := spoken[w]; !said {
			score *= 2.0
		}
		if len(w) > 2 && w[len(w)-2:] == "en" {
			score *= 1.2
		}
		all = append(all, scored{score, w})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].word > all[j].word
	})

	if len(all) > k {
		all = all[:k]
	}
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.word
	}
	return out
}

func hasOldFormSuffix(w string) bool {
	for _, suf := range oldFormSuffixes {
		if len(w) > len(suf) && w[len(w)-len(suf):] == suf {
			return true
		}
	}
	return false
}

// connectorTerms are structure words always offered first as bonus terms.
var connectorTerms = []string{"weil", "deshalb", "dadurch", "allerdings", "somit"}

// bonusVocab maps a source-text keyword to an active-use C1 term.
var bonusVocab = []struct{ key, term string }{
	{"täusch", "täuschen"},
	{"manipulier", "manipulieren"},
	{"inszenier", "inszenieren"},
	{"plan", "strategie"},
	{"befehl", "anweisen"},
	{"droh", "einschüchtern"},
	{"besitz", "besitz"},
	{"bestätig", "bestätigen"},
	{"behaupt", "behaupten"},
}

var bonusFallback = []string{"zusammenhang", "konsequenz", "ziel", "vorteil", "nachteil"}

// SuggestBonusTerms returns up to k actively usable terms: two connectors,
// then content words keyed on the source text, padded from a fallback list.
func SuggestBonusTerms(sourceText string, k int) []string {
	if k <= 0 {
		return nil
	}
	src := Normalize(sourceText)

	out := make([]string, 0, k)
	out = append(out, connectorTerms[:2]...)

	for _, v := range bonusVocab {
		if len(out) >= k {
			break
		}
		if containsWordPrefix(src, v.key) && !contains(out, v.term) {
			out = append(out, v.term)
		}
	}
	for _, t := range bonusFallback {
		if len(out) >= k {
			break
		}
		if !contains(out, t) {
			out = append(out, t)
		}
	}
	if len(out) > k {
		out = out[:k]
	}
	return out
}

func containsWordPrefix(haystack, key string) bool {
	for i := 0; i+len(key) <= len(haystack); i++ {
		if haystack[i:i+len(key)] == key {
			return true
		}
	}
	return false
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

// TermsCheck records which suggested terms the learner actually used.
type TermsCheck struct {
	Used    []string `json:"used"`
	Missing []string `json:"missing"`
	Rate    float64  `json:"rate"`
}

// CheckTermsUsed splits terms into used/missing against the transcript's
// token set and computes the usage rate. Nil terms yields the zero value.
func CheckTermsUsed(terms []string, transcript string) TermsCheck {
	if len(terms) == 0 {
		return TermsCheck{}
	}

	words := make(map[string]struct{})
	for _, w := range Tokenize(transcript) {
		words[w] = struct{}{}
	}

	var check TermsCheck
	for _, term := range terms {
		if _, ok := words[Normalize(term)]; ok {
			check.Used = append(check.Used, term)
		} else {
			check.Missing = append(check.Missing, term)
		}
	}
	check.Rate = float64(len(check.Used)) / float64(len(terms))
	return check
}
