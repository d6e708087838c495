package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	entschema "github.com/mkoehler/sprechzeit/ent/schema"
	"github.com/mkoehler/sprechzeit/internal/asr"
	"github.com/mkoehler/sprechzeit/internal/coach"
	"github.com/mkoehler/sprechzeit/internal/quality"
	"github.com/mkoehler/sprechzeit/internal/store"
	"github.com/mkoehler/sprechzeit/internal/textstats"
)

const targetTermCount = 5

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Score one spoken answer and store the attempt",
	Long: "Transcribes a recorded answer (or takes a typed transcript), computes\n" +
		"lexical stats, runs the quality diagnosis and appends the attempt to\n" +
		"the practice history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		fileCfg, err := fileConfig()
		if err != nil {
			return err
		}

		modeFlag, _ := cmd.Flags().GetString("mode")
		levelFlag, _ := cmd.Flags().GetString("level")
		topicFlag, _ := cmd.Flags().GetString("topic")
		audioPath, _ := cmd.Flags().GetString("audio")
		typed, _ := cmd.Flags().GetString("text")
		sourcePath, _ := cmd.Flags().GetString("source")
		duration, _ := cmd.Flags().GetFloat64("duration")

		mode := stringDefault(modeFlag, fileCfg.Speak.Mode, "retell")
		level := stringDefault(levelFlag, fileCfg.Speak.Level, "easy")
		topic := stringDefault(topicFlag, fileCfg.Speak.Topic, "")

		if !validMode(mode) {
			return fmt.Errorf("unknown mode %q (want retell, q1, q2, q3 or read)", mode)
		}
		if typed == "" && audioPath == "" {
			return fmt.Errorf("provide --audio with a recording or --text with a transcript")
		}

		sourceText, err := readSourceFile(sourcePath)
		if err != nil {
			return err
		}
		if mode == "read" && sourceText == "" {
			return fmt.Errorf("read mode needs --source with the text that was read aloud")
		}

		if prompt := coach.PromptFor(level, mode); prompt != "" {
			fmt.Println(coach.WithVariationHint(prompt, mode))
			fmt.Println()
		}

		transcript := typed
		if transcript == "" {
			transcriber, err := asr.NewWhisperTranscriber(asr.ConfigFromEnv())
			if err != nil {
				return fmt.Errorf("configure transcription: %w", err)
			}
			transcript, err = transcriber.Transcribe(ctx, audioPath)
			if err != nil {
				return fmt.Errorf("transcribe %s: %w", audioPath, err)
			}
		}
		transcript = textstats.CutAtPunkt(transcript)

		stats := textstats.Compute(transcript)
		diag := quality.Classify(mode, transcript, stats, duration, quality.DefaultThresholds())

		rec := store.AttemptRecord{
			AttemptID:  uuid.NewString(),
			Mode:       mode,
			Topic:      topic,
			Transcript: transcript,
			Stats:      stats,
			Diagnosis:  diag,
			Extras:     attemptExtras(mode, sourceText, transcript),
		}
		if sourceText != "" {
			rec.SourceText = &sourceText
		}
		if duration > 0 {
			rec.DurationSeconds = &duration
			wpm := textstats.WordsPerMinute(stats.WordCount, duration)
			rec.WPM = &wpm
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Attempts().Insert(ctx, rec); err != nil {
			return fmt.Errorf("store attempt: %w", err)
		}

		printAttemptFeedback(rec)
		return nil
	},
}

func init() {
	speakCmd.Flags().String("mode", "", "Practice mode: retell, q1, q2, q3 or read")
	speakCmd.Flags().String("level", "", "Difficulty: easy, medium or hard")
	speakCmd.Flags().String("topic", "", "Topic label stored with the attempt")
	speakCmd.Flags().String("audio", "", "Audio file to transcribe")
	speakCmd.Flags().String("text", "", "Typed transcript (skips transcription)")
	speakCmd.Flags().String("source", "", "Source text file the answer refers to")
	speakCmd.Flags().Float64("duration", 0, "Recording duration in seconds (enables WPM)")
}

func validMode(mode string) bool {
	switch mode {
	case "retell", "q1", "q2", "q3", "read":
		return true
	}
	return false
}

func readSourceFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source text: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// attemptExtras builds the mode-specific payload: term suggestions and
// usage checks for retell/q3, token overlap for read, causal detection
// for q3.
func attemptExtras(mode, sourceText, transcript string) *entschema.AttemptExtras {
	extras := &entschema.AttemptExtras{}
	filled := false

	if sourceText != "" && (mode == "retell" || mode == "q3") {
		targets := textstats.SuggestTargetTerms(sourceText, transcript, targetTermCount)
		if len(targets) > 0 {
			check := toSchemaCheck(textstats.CheckTermsUsed(targets, transcript))
			extras.TargetTerms = targets
			extras.TargetTermsCheck = &check
			filled = true
		}
		bonus := textstats.SuggestBonusTerms(sourceText, targetTermCount)
		if len(bonus) > 0 {
			check := toSchemaCheck(textstats.CheckTermsUsed(bonus, transcript))
			extras.BonusTerms = bonus
			extras.BonusTermsCheck = &check
			filled = true
		}
	}

	if mode == "read" && sourceText != "" {
		ov := textstats.ComputeOverlap(sourceText, transcript)
		extras.ReadOverlap = &entschema.Overlap{
			Precision: ov.Precision,
			Recall:    ov.Recall,
			F1:        ov.F1,
		}
		filled = true
	}

	if mode == "q3" {
		causal := coach.HasCausalConnector(transcript)
		extras.Q3HasCausal = &causal
		filled = true
	}

	if !filled {
		return nil
	}
	return extras
}

func toSchemaCheck(c textstats.TermsCheck) entschema.TermsCheck {
	return entschema.TermsCheck{Used: c.Used, Missing: c.Missing, Rate: c.Rate}
}

func printAttemptFeedback(rec store.AttemptRecord) {
	fmt.Printf("Transkript (%d Wörter, Vielfalt %.2f):\n%s\n",
		rec.Stats.WordCount, rec.Stats.UniqueRatio, rec.Transcript)

	if rec.WPM != nil {
		fmt.Printf("Tempo: %.0f Wörter/Minute\n", *rec.WPM)
	}

	if hint := quality.FirstHint(rec.Diagnosis); hint != nil {
		fmt.Println("\n" + hint.Message)
	}

	if rec.Extras != nil {
		if c := rec.Extras.TargetTermsCheck; c != nil && len(c.Missing) > 0 {
			fmt.Printf("\nNicht verwendete Zielbegriffe: %s\n", strings.Join(c.Missing, ", "))
		}
		if rec.Extras.ReadOverlap != nil {
			ov := rec.Extras.ReadOverlap
			fmt.Printf("\nÜbereinstimmung mit dem Text: F1 %.2f (Präzision %.2f, Abdeckung %.2f)\n",
				ov.F1, ov.Precision, ov.Recall)
		}
	}

	if rec.Mode == "q3" {
		if fb := coach.CausalFeedback(rec.Transcript); fb != "" {
			fmt.Println("\n" + fb)
		}
	}
}
