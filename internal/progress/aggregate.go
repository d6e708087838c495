// Package progress reduces attempt history to per-mode trend statistics and
// a single prioritized next-action recommendation.
package progress

import "sort"

// Attempt is the slice of an attempt record the aggregator needs.
// Pointer fields model optional values: nil means the attempt predates the
// field and is excluded from that rate's denominator.
type Attempt struct {
	Mode        string
	WordCount   int
	UniqueRatio float64
	WPM         *float64
	LowQuality  *bool
	ASREmpty    *bool
	Q3HasCausal *bool
}

// ModeStats holds the aggregated trend for one practice mode.
// Medians are used instead of means so a single garbled attempt cannot
// drag the trend.
type ModeStats struct {
	Mode              string
	Count             int
	MedianWordCount   float64
	MedianUniqueRatio float64
	MedianWPM         float64 // over attempts with a duration; 0 when none have one

	LowQualityRate *float64 // nil when no attempt carries the flag
	ASREmptyRate   *float64
	Q3CausalRate   *float64 // q3 only

	Notes []string
}

// Recommendation is the single surfaced next action.
type Recommendation struct {
	Code    string
	Message string
	Mode    string // the group that triggered it
}

// rateThreshold is the shared cutoff for "this happens too often".
const rateThreshold = 0.34

const (
	minMedianWords       = 12
	minMedianUniqueRatio = 0.55
)

// recRule is one rung of the recommendation ladder.
type recRule struct {
	code    string
	message string
	match   func(ModeStats) bool
}

// recLadder is evaluated rung by rung across all mode groups; within a rung
// groups are visited in lexicographic mode order, so the outcome never
// depends on map iteration.
var recLadder = []recRule{
	{
		code:    "check-recording",
		message: "check recording technique",
		match: func(m ModeStats) bool {
			return m.ASREmptyRate != nil && *m.ASREmptyRate >= rateThreshold
		},
	},
	{
		code:    "repeat-close-to-mic",
		message: "shorten and repeat close to mic",
		match: func(m ModeStats) bool {
			return m.LowQualityRate != nil && *m.LowQualityRate >= rateThreshold
		},
	},
	{
		code:    "increase-length",
		message: "increase length",
		match:   func(m ModeStats) bool { return m.Count > 0 && m.MedianWordCount < minMedianWords },
	},
	{
		code:    "increase-variety",
		message: "increase lexical variety",
		match:   func(m ModeStats) bool { return m.Count > 0 && m.MedianUniqueRatio < minMedianUniqueRatio },
	},
}

// Aggregate reduces attempt history to per-mode stats plus at most one
// recommendation. attempts must be in chronological order. modeFilter
// restricts to one mode when non-empty; lastN then keeps only the most
// recent N of what remains (0 = all), so "last 5 of q1" means the last
// five q1 attempts, not q1 attempts among the last five overall.
// Returned groups are sorted by mode name.
func Aggregate(attempts []Attempt, lastN uint, modeFilter string) ([]ModeStats, *Recommendation) {
	if modeFilter != "" {
		filtered := make([]Attempt, 0, len(attempts))
		for _, a := range attempts {
			if a.Mode == modeFilter {
				filtered = append(filtered, a)
			}
		}
		attempts = filtered
	}
	if lastN > 0 && uint(len(attempts)) > lastN {
		attempts = attempts[uint(len(attempts))-lastN:]
	}

	groups := make(map[string][]Attempt)
	for _, a := range attempts {
		groups[a.Mode] = append(groups[a.Mode], a)
	}

	modes := make([]string, 0, len(groups))
	for m := range groups {
		modes = append(modes, m)
	}
	sort.Strings(modes)

	stats := make([]ModeStats, 0, len(modes))
	for _, mode := range modes {
		stats = append(stats, aggregateMode(mode, groups[mode]))
	}

	return stats, recommend(stats)
}

func aggregateMode(mode string, attempts []Attempt) ModeStats {
	ms := ModeStats{Mode: mode, Count: len(attempts)}

	var wordCounts, ratios, wpms []float64
	for _, a := range attempts {
		wordCounts = append(wordCounts, float64(a.WordCount))
		ratios = append(ratios, a.UniqueRatio)
		if a.WPM != nil {
			wpms = append(wpms, *a.WPM)
		}
	}
	ms.MedianWordCount = median(wordCounts)
	ms.MedianUniqueRatio = median(ratios)
	ms.MedianWPM = median(wpms)

	ms.LowQualityRate = boolRate(attempts, func(a Attempt) *bool { return a.LowQuality })
	ms.ASREmptyRate = boolRate(attempts, func(a Attempt) *bool { return a.ASREmpty })
	if mode == "q3" {
		ms.Q3CausalRate = boolRate(attempts, func(a Attempt) *bool { return a.Q3HasCausal })
	}

	if ms.LowQualityRate != nil && *ms.LowQualityRate >= rateThreshold {
		ms.Notes = append(ms.Notes, "frequent quality problems")
	}
	if ms.ASREmptyRate != nil && *ms.ASREmptyRate >= rateThreshold {
		ms.Notes = append(ms.Notes, "frequently empty ASR")
	}

	return ms
}

// recommend walks the ladder top-down; the first rung any group matches
// wins, ties broken by the groups' sorted order.
func recommend(stats []ModeStats) *Recommendation {
	for _, rule := range recLadder {
		for _, ms := range stats {
			if rule.match(ms) {
				return &Recommendation{Code: rule.code, Message: rule.message, Mode: ms.Mode}
			}
		}
	}
	return nil
}

// boolRate computes rate(field == true) over attempts where the field is
// present. Returns nil when no attempt carries it.
func boolRate(attempts []Attempt, get func(Attempt) *bool) *float64 {
	present, trues := 0, 0
	for _, a := range attempts {
		v := get(a)
		if v == nil {
			continue
		}
		present++
		if *v {
			trues++
		}
	}
	if present == 0 {
		return nil
	}
	r := float64(trues) / float64(present)
	return &r
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := make([]float64, len(vals))
	copy(s, vals)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
