package clients

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ElevenLabs calls the ElevenLabs text-to-speech API
type ElevenLabs struct {
	BaseURL string
	APIKey  string
	VoiceID string
	ModelID string
	Timeout time.Duration
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// DefaultVoice returns the configured voice
func (e *ElevenLabs) DefaultVoice() string {
	return e.VoiceID
}

// Synthesize renders text with voiceID, falling back to the configured
// voice. It returns the audio and its content type.
func (e *ElevenLabs) Synthesize(ctx context.Context, voiceID, text string) ([]byte, string, error) {
	if e.APIKey == "" {
		return nil, "", ErrNoAPIKey
	}
	timeout, err := timeoutFor(ctx, e.Timeout)
	if err != nil {
		return nil, "", err
	}
	if voiceID == "" {
		voiceID = e.VoiceID
	}

	a := agentClient.Post(strings.TrimRight(e.BaseURL, "/") + "/v1/text-to-speech/" + voiceID)
	a.Set("xi-api-key", e.APIKey)
	a.Set(fiber.HeaderAccept, "audio/mpeg")
	a.JSON(speechRequest{
		Text:    text,
		ModelID: e.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})

	audio, err := send("elevenlabs", a, timeout, nil)
	if err != nil {
		return nil, "", err
	}
	return audio, "audio/mpeg", nil
}
