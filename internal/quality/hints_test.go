package quality

import "testing"

func TestHintPriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnosis
		want string
	}{
		{
			name: "asr empty beats everything",
			d:    Diagnosis{ASREmpty: true, SuspectedSilence: true, HallucinationHit: true, TooShort: true, LowQuality: true},
			want: "asr-empty",
		},
		{
			name: "silence beats hallucination",
			d:    Diagnosis{SuspectedSilence: true, HallucinationHit: true, LowQuality: true},
			want: "suspected-silence",
		},
		{
			name: "hallucination beats length",
			d:    Diagnosis{HallucinationHit: true, RetellEmpty: true, LowQuality: true},
			want: "hallucination",
		},
		{
			name: "retell empty alone",
			d:    Diagnosis{RetellEmpty: true, LowQuality: true},
			want: "too-short",
		},
		{
			name: "too short alone",
			d:    Diagnosis{TooShort: true, LowQuality: true},
			want: "too-short",
		},
	}

	for _, tt := range tests {
		h := FirstHint(tt.d)
		if h == nil {
			t.Errorf("%s: got nil hint, want %q", tt.name, tt.want)
			continue
		}
		if h.Code != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, h.Code, tt.want)
		}
	}
}

func TestNoHintForCleanDiagnosis(t *testing.T) {
	if h := FirstHint(Diagnosis{StopwordRatio: 0.3}); h != nil {
		t.Errorf("clean diagnosis produced hint %q", h.Code)
	}
}
