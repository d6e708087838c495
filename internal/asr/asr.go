// Package asr turns recorded audio into text. The core treats
// transcription as an opaque synchronous call; retry policy, if any,
// belongs to the implementation behind the interface.
package asr

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber converts an audio file into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Config holds speech-to-text configuration.
type Config struct {
	APIKey   string
	Model    string // Default: whisper-1
	Language string // Default: de
	BaseURL  string // Optional. Override for OpenAI-compatible APIs.
}

// ConfigFromEnv builds a Config from SPRECHZEIT_ASR_* variables, falling
// back to the OpenAI key shared with the LLM layer.
func ConfigFromEnv() Config {
	cfg := Config{
		Model:    openai.Whisper1,
		Language: "de",
	}
	if k := os.Getenv("SPRECHZEIT_ASR_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("SPRECHZEIT_OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if m := os.Getenv("SPRECHZEIT_ASR_MODEL"); m != "" {
		cfg.Model = m
	}
	if l := os.Getenv("SPRECHZEIT_ASR_LANGUAGE"); l != "" {
		cfg.Language = l
	}
	if u := os.Getenv("SPRECHZEIT_ASR_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}

// WhisperTranscriber transcribes audio through the OpenAI audio API.
type WhisperTranscriber struct {
	client   *openai.Client
	model    string
	language string
}

// NewWhisperTranscriber creates a WhisperTranscriber from config.
func NewWhisperTranscriber(cfg Config) (*WhisperTranscriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ASR API key is required (set SPRECHZEIT_ASR_API_KEY)")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.Whisper1
	}
	language := cfg.Language
	if language == "" {
		language = "de"
	}
	return &WhisperTranscriber{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    model,
		language: language,
	}, nil
}

// Transcribe sends the audio file to the API and returns the transcript.
func (w *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file: %w", err)
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
		Language: w.language,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
	}
	return resp.Text, nil
}
