package textstats

// Overlap holds token-set overlap metrics between a source text and what
// the learner actually said. Used for read-mode attempts.
type Overlap struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// ComputeOverlap compares the token sets of source and spoken text.
// Either side being empty yields all-zero metrics.
func ComputeOverlap(source, spoken string) Overlap {
	sw := Tokenize(source)
	tw := Tokenize(spoken)
	if len(sw) == 0 || len(tw) == 0 {
		return Overlap{}
	}

	sset := make(map[string]struct{}, len(sw))
	for _, w := range sw {
		sset[w] = struct{}{}
	}
	tset := make(map[string]struct{}, len(tw))
	for _, w := range tw {
		tset[w] = struct{}{}
	}

	inter := 0
	for w := range tset {
		if _, ok := sset[w]; ok {
			inter++
		}
	}

	precision := float64(inter) / float64(len(tset))
	recall := float64(inter) / float64(len(sset))
	var f1 float64
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return Overlap{Precision: precision, Recall: recall, F1: f1}
}
