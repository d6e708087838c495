package quality

// Hint is the single human-facing advice block shown for an unreliable
// attempt. At most one hint is ever surfaced per attempt; the stored flags
// stay untouched for analytics.
type Hint struct {
	Code    string
	Message string
}

// hintRule pairs a predicate with the hint to show when it matches first.
type hintRule struct {
	match func(Diagnosis) bool
	hint  Hint
}

// hintLadder is evaluated in order; the first matching rule wins.
// Ordering: empty audio beats silence beats ghost text beats length.
var hintLadder = []hintRule{
	{
		match: func(d Diagnosis) bool { return d.ASREmpty },
		hint: Hint{
			Code: "asr-empty",
			Message: "Die Aufnahme kam praktisch leer an. Sprich lauter und näher " +
				"ans Mikrofon und prüfe das Input-Device.",
		},
	},
	{
		match: func(d Diagnosis) bool { return d.SuspectedSilence },
		hint: Hint{
			Code: "suspected-silence",
			Message: "Die Aufnahme wirkt wie Stille oder Wiederholung. Wiederhole " +
				"1–2 klare Sätze, näher am Mikrofon.",
		},
	},
	{
		match: func(d Diagnosis) bool { return d.HallucinationHit },
		hint: Hint{
			Code: "hallucination",
			Message: "Die Antwort wirkt wie ASR-Geistertext. Nimm sie neu auf und " +
				"sprich 1–2 Sätze zum Inhalt.",
		},
	},
	{
		match: func(d Diagnosis) bool { return d.TooShort || d.RetellEmpty },
		hint: Hint{
			Code: "too-short",
			Message: "Die Antwort ist zu kurz. Antworte in ganzen Sätzen und bleib " +
				"beim Inhalt des Abschnitts.",
		},
	},
}

// FirstHint returns the highest-priority hint for the diagnosis, or nil if
// the attempt raised no flags.
func FirstHint(d Diagnosis) *Hint {
	for _, r := range hintLadder {
		if r.match(d) {
			h := r.hint
			return &h
		}
	}
	return nil
}
