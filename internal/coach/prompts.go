package coach

// PromptFor returns the fixed German question prompt for a practice mode
// at the given difficulty level. Unknown modes return "".
func PromptFor(level, mode string) string {
	switch normalizeLevel(level) {
	case "easy":
		return easyPrompts[mode]
	case "medium":
		return mediumPrompts[mode]
	case "hard":
		return hardPrompts[mode]
	}
	return ""
}

// WithVariationHint appends the anti-repetition hint for the mode: retell
// answers should not reuse earlier phrasings, question answers should not
// open with the same word twice.
func WithVariationHint(prompt, mode string) string {
	switch mode {
	case "retell":
		return prompt + "\n→ Vermeide gleiche Formulierungen wie zuvor."
	case "q1", "q2", "q3":
		return prompt + "\n→ Beginne nicht mit demselben Wort wie zuvor."
	}
	return prompt
}

func normalizeLevel(level string) string {
	switch level {
	case "", "easy", "leicht":
		return "easy"
	case "medium", "mittel":
		return "medium"
	case "hard", "schwer":
		return "hard"
	}
	return "easy"
}

var easyPrompts = map[string]string{
	"retell": "Wiedergabe (leicht): 2–3 Sätze. Was ist passiert?",
	"q1":     "Q1 (leicht): 1 Satz. Deine These/Meinung.",
	"q2":     "Q2 (leicht): 2 Sätze. Nenne 2 Fakten/Aussagen aus dem Abschnitt.",
	"q3":     "Q3 (leicht): 2 Sätze. Ursache→Wirkung mit weil/deshalb.",
}

var mediumPrompts = map[string]string{
	"retell": "Wiedergabe (mittel): 4–6 Sätze. Nenne 3 wichtige Punkte + 1 Detail.",
	"q1":     "Q1 (mittel): 2 Sätze. These + kurze Begründung (1× weil/denn).",
	"q2":     "Q2 (mittel): 3 Sätze. 2 Gründe + 1 Beispiel.",
	"q3":     "Q3 (mittel): 3 Sätze. Ursache→Wirkung + Folge.",
}

var hardPrompts = map[string]string{
	"retell": "Wiedergabe (schwer): 4–6 Sätze. Struktur: Thema → 3 Punkte → Schluss/Fazit. (Max. 60 Sekunden)",
	"q1":     "Q1 (schwer): 3 Sätze. These + 2 Argumente (klar getrennt).",
	"q2":     "Q2 (schwer): 4 Sätze. 2 Fakten + Beispiel + kurzer Schluss.",
	"q3":     "Q3 (schwer): 2–3 Sätze. Ursache→Wirkung + Folge. (Genau 1× weil/deshalb/daher)",
}
