package path

import (
	"errors"
	"testing"
)

func TestValidateSteps(t *testing.T) {
	tests := []struct {
		name    string
		steps   []Step
		wantErr bool
	}{
		{
			name: "contiguous three steps",
			steps: []Step{
				{Order: 1, Type: StepNews},
				{Order: 2, Type: StepDefineVocab},
				{Order: 3, Type: StepReview},
			},
		},
		{
			name:  "single step",
			steps: []Step{{Order: 1, Type: StepBook}},
		},
		{
			name:    "empty",
			steps:   nil,
			wantErr: true,
		},
		{
			name: "gap in orders",
			steps: []Step{
				{Order: 1, Type: StepNews},
				{Order: 3, Type: StepReview},
			},
			wantErr: true,
		},
		{
			name: "duplicate order",
			steps: []Step{
				{Order: 1, Type: StepNews},
				{Order: 1, Type: StepReview},
			},
			wantErr: true,
		},
		{
			name:    "zero-based",
			steps:   []Step{{Order: 0, Type: StepNews}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			steps:   []Step{{Order: 1, Type: "quiz"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSteps(tt.steps)
			if tt.wantErr {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("got %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
