package asr

import (
	"context"
	"sync"
)

// MockTranscriber is a deterministic Transcriber for testing. It returns
// canned transcripts in FIFO order and records the requested paths.
type MockTranscriber struct {
	mu          sync.Mutex
	transcripts []string
	err         error
	Paths       []string
}

// NewMockTranscriber creates a MockTranscriber with canned transcripts.
func NewMockTranscriber(transcripts ...string) *MockTranscriber {
	return &MockTranscriber{transcripts: transcripts}
}

// Fail makes every subsequent Transcribe call return err.
func (m *MockTranscriber) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Transcribe returns the next canned transcript. An exhausted queue
// returns "", matching a silent recording.
func (m *MockTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Paths = append(m.Paths, audioPath)
	if m.err != nil {
		return "", m.err
	}
	if len(m.transcripts) == 0 {
		return "", nil
	}
	t := m.transcripts[0]
	m.transcripts = m.transcripts[1:]
	return t, nil
}
