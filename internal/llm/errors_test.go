package llm

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	base := errors.New("api failure")

	tests := []struct {
		name   string
		status int
		want   any
	}{
		{"rate limit", http.StatusTooManyRequests, &ErrRateLimit{}},
		{"server error", http.StatusInternalServerError, &ErrProviderUnavailable{}},
		{"bad gateway", http.StatusBadGateway, &ErrProviderUnavailable{}},
		{"client error", http.StatusBadRequest, &ErrProviderUnavailable{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyStatus(tt.status, base)
			switch tt.want.(type) {
			case *ErrRateLimit:
				var rl *ErrRateLimit
				if !errors.As(got, &rl) {
					t.Fatalf("expected ErrRateLimit, got %T", got)
				}
			case *ErrProviderUnavailable:
				var unavail *ErrProviderUnavailable
				if !errors.As(got, &unavail) {
					t.Fatalf("expected ErrProviderUnavailable, got %T", got)
				}
			}
			if !errors.Is(got, base) {
				t.Fatalf("expected classified error to wrap the original")
			}
		})
	}
}
