package progress

import (
	"math"
	"testing"
)

func boolPtr(b bool) *bool       { return &b }
func f64Ptr(f float64) *float64  { return &f }

func TestAggregateEmpty(t *testing.T) {
	stats, rec := Aggregate(nil, 0, "")
	if len(stats) != 0 {
		t.Errorf("got %d groups, want 0", len(stats))
	}
	if rec != nil {
		t.Errorf("got recommendation %+v for empty history, want nil", rec)
	}
}

func TestEmptyASRRateDominates(t *testing.T) {
	// q1 history: word counts 8/9/7, asr_empty true/true/false → rate 0.667.
	attempts := []Attempt{
		{Mode: "q1", WordCount: 8, UniqueRatio: 0.9, ASREmpty: boolPtr(true), LowQuality: boolPtr(true)},
		{Mode: "q1", WordCount: 9, UniqueRatio: 0.9, ASREmpty: boolPtr(true), LowQuality: boolPtr(true)},
		{Mode: "q1", WordCount: 7, UniqueRatio: 0.9, ASREmpty: boolPtr(false), LowQuality: boolPtr(false)},
		// A healthy retell group must not change the outcome.
		{Mode: "retell", WordCount: 40, UniqueRatio: 0.8, ASREmpty: boolPtr(false), LowQuality: boolPtr(false)},
	}

	stats, rec := Aggregate(attempts, 0, "")
	if len(stats) != 2 {
		t.Fatalf("got %d groups, want 2", len(stats))
	}

	q1 := stats[0]
	if q1.Mode != "q1" {
		t.Fatalf("groups not sorted by mode: %q first", q1.Mode)
	}
	if q1.ASREmptyRate == nil || math.Abs(*q1.ASREmptyRate-2.0/3.0) > 1e-9 {
		t.Errorf("q1 asr_empty rate = %v, want 0.667", q1.ASREmptyRate)
	}

	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if rec.Code != "check-recording" {
		t.Errorf("recommendation = %q, want check-recording", rec.Code)
	}
	if rec.Mode != "q1" {
		t.Errorf("recommendation mode = %q, want q1", rec.Mode)
	}
}

func TestLadderOrder(t *testing.T) {
	mk := func(mode string, wc int, uniq float64, lowq, empty bool) Attempt {
		return Attempt{
			Mode: mode, WordCount: wc, UniqueRatio: uniq,
			LowQuality: boolPtr(lowq), ASREmpty: boolPtr(empty),
		}
	}

	// Low quality frequent, asr_empty fine → rung 2.
	attempts := []Attempt{
		mk("retell", 30, 0.8, true, false),
		mk("retell", 28, 0.8, true, false),
		mk("retell", 35, 0.8, false, false),
	}
	_, rec := Aggregate(attempts, 0, "")
	if rec == nil || rec.Code != "repeat-close-to-mic" {
		t.Fatalf("got %+v, want repeat-close-to-mic", rec)
	}

	// Flags fine, median word count low → rung 3.
	attempts = []Attempt{
		mk("q1", 8, 0.9, false, false),
		mk("q1", 10, 0.9, false, false),
		mk("q1", 9, 0.9, false, false),
	}
	_, rec = Aggregate(attempts, 0, "")
	if rec == nil || rec.Code != "increase-length" {
		t.Fatalf("got %+v, want increase-length", rec)
	}

	// Everything fine except unique ratio → rung 4.
	attempts = []Attempt{
		mk("retell", 30, 0.5, false, false),
		mk("retell", 25, 0.52, false, false),
	}
	_, rec = Aggregate(attempts, 0, "")
	if rec == nil || rec.Code != "increase-variety" {
		t.Fatalf("got %+v, want increase-variety", rec)
	}

	// Healthy history → no recommendation.
	attempts = []Attempt{
		mk("retell", 30, 0.8, false, false),
		mk("retell", 25, 0.75, false, false),
	}
	_, rec = Aggregate(attempts, 0, "")
	if rec != nil {
		t.Fatalf("got %+v for healthy history, want nil", rec)
	}
}

func TestTieBreakIsLexicographic(t *testing.T) {
	attempts := []Attempt{
		{Mode: "q2", WordCount: 5, UniqueRatio: 0.9, LowQuality: boolPtr(false), ASREmpty: boolPtr(false)},
		{Mode: "q1", WordCount: 5, UniqueRatio: 0.9, LowQuality: boolPtr(false), ASREmpty: boolPtr(false)},
	}
	_, rec := Aggregate(attempts, 0, "")
	if rec == nil || rec.Code != "increase-length" {
		t.Fatalf("got %+v, want increase-length", rec)
	}
	if rec.Mode != "q1" {
		t.Errorf("tie broken to %q, want q1 (lexicographic)", rec.Mode)
	}
}

func TestRateDenominatorExcludesMissingFields(t *testing.T) {
	attempts := []Attempt{
		{Mode: "q1", WordCount: 20, UniqueRatio: 0.9, ASREmpty: boolPtr(true)},
		{Mode: "q1", WordCount: 20, UniqueRatio: 0.9}, // legacy record, no flags
		{Mode: "q1", WordCount: 20, UniqueRatio: 0.9},
	}
	stats, _ := Aggregate(attempts, 0, "")
	if stats[0].ASREmptyRate == nil || *stats[0].ASREmptyRate != 1.0 {
		t.Errorf("asr_empty rate = %v, want 1.0 over the single flagged attempt", stats[0].ASREmptyRate)
	}
	if stats[0].LowQualityRate != nil {
		t.Errorf("low_quality rate = %v, want nil (never present)", stats[0].LowQualityRate)
	}
}

func TestMedianWPMAndQ3Rate(t *testing.T) {
	attempts := []Attempt{
		{Mode: "q3", WordCount: 20, UniqueRatio: 0.8, WPM: f64Ptr(100), Q3HasCausal: boolPtr(true)},
		{Mode: "q3", WordCount: 22, UniqueRatio: 0.8, WPM: f64Ptr(140), Q3HasCausal: boolPtr(false)},
		{Mode: "q3", WordCount: 24, UniqueRatio: 0.8, WPM: f64Ptr(120)},
	}
	stats, _ := Aggregate(attempts, 0, "")
	q3 := stats[0]
	if q3.MedianWPM != 120 {
		t.Errorf("median wpm = %f, want 120", q3.MedianWPM)
	}
	if q3.Q3CausalRate == nil || *q3.Q3CausalRate != 0.5 {
		t.Errorf("q3 causal rate = %v, want 0.5", q3.Q3CausalRate)
	}
}

func TestLastNWindow(t *testing.T) {
	var attempts []Attempt
	for i := 0; i < 10; i++ {
		attempts = append(attempts, Attempt{Mode: "q1", WordCount: 5, UniqueRatio: 0.9})
	}
	// The 3 most recent are long answers; lastN=3 must only see those.
	for i := 0; i < 3; i++ {
		attempts = append(attempts, Attempt{Mode: "q1", WordCount: 30, UniqueRatio: 0.9})
	}
	stats, rec := Aggregate(attempts, 3, "")
	if stats[0].Count != 3 {
		t.Errorf("count = %d, want 3", stats[0].Count)
	}
	if rec != nil {
		t.Errorf("got %+v, want nil (recent answers are long)", rec)
	}
}

func TestModeFilter(t *testing.T) {
	attempts := []Attempt{
		{Mode: "q1", WordCount: 5, UniqueRatio: 0.9},
		{Mode: "retell", WordCount: 30, UniqueRatio: 0.9},
	}
	stats, _ := Aggregate(attempts, 0, "retell")
	if len(stats) != 1 || stats[0].Mode != "retell" {
		t.Fatalf("filter failed: %+v", stats)
	}
}

func TestModeFilterAppliesBeforeLastNWindow(t *testing.T) {
	// Two q1 attempts followed by two retell attempts. "Last 2 of q1"
	// must mean the two most recent q1 attempts, not q1 attempts among
	// the two most recent overall (which would be none).
	attempts := []Attempt{
		{Mode: "q1", WordCount: 5, UniqueRatio: 0.9},
		{Mode: "q1", WordCount: 6, UniqueRatio: 0.9},
		{Mode: "retell", WordCount: 30, UniqueRatio: 0.9},
		{Mode: "retell", WordCount: 32, UniqueRatio: 0.9},
	}
	stats, _ := Aggregate(attempts, 2, "q1")
	if len(stats) != 1 {
		t.Fatalf("got %d groups, want 1", len(stats))
	}
	if stats[0].Mode != "q1" || stats[0].Count != 2 {
		t.Errorf("got mode %q count %d, want q1 count 2", stats[0].Mode, stats[0].Count)
	}

	// With a window smaller than the mode's history, only the most
	// recent attempts of that mode remain.
	attempts = append(attempts, Attempt{Mode: "q1", WordCount: 40, UniqueRatio: 0.9})
	stats, _ = Aggregate(attempts, 1, "q1")
	if stats[0].Count != 1 || stats[0].MedianWordCount != 40 {
		t.Errorf("got count %d median %f, want the single newest q1 attempt (40 words)",
			stats[0].Count, stats[0].MedianWordCount)
	}
}

func TestPerGroupNotes(t *testing.T) {
	attempts := []Attempt{
		{Mode: "q1", WordCount: 20, UniqueRatio: 0.9, LowQuality: boolPtr(true), ASREmpty: boolPtr(true)},
		{Mode: "q1", WordCount: 20, UniqueRatio: 0.9, LowQuality: boolPtr(true), ASREmpty: boolPtr(true)},
	}
	stats, _ := Aggregate(attempts, 0, "")
	notes := stats[0].Notes
	if len(notes) != 2 {
		t.Fatalf("notes = %v, want both quality and empty-ASR notes", notes)
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("odd median = %f, want 2", got)
	}
	if got := median([]float64{4, 1, 2, 3}); got != 2.5 {
		t.Errorf("even median = %f, want 2.5", got)
	}
	if got := median(nil); got != 0 {
		t.Errorf("empty median = %f, want 0", got)
	}
	// Outlier resistance: one garbled 400-word attempt doesn't move the median.
	if got := median([]float64{20, 22, 400}); got != 22 {
		t.Errorf("median with outlier = %f, want 22", got)
	}
}
