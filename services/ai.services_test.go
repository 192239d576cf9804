package services

import (
	"encoding/base64"
	Errors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"solamate_server/clients"
	"solamate_server/pet"
	"solamate_server/schemas"
	"solamate_server/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reply(content string, calls ...clients.ToolCall) *clients.ChatResponse {
	return &clients.ChatResponse{Choices: []clients.ChatChoice{{
		Message: clients.ChatMessage{Role: "assistant", Content: content, ToolCalls: calls},
	}}}
}

func TestHandler_Chat(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	dest := newWallet()

	body := schemas.ChatSchema{Messages: []schemas.AIMessageSchema{{Role: "user", Content: "send 0.5 SOL to my friend"}}}
	badRole := schemas.ChatSchema{Messages: []schemas.AIMessageSchema{{Role: "tool", Content: "x"}}}

	tests := []struct {
		name         string
		body         interface{}
		status       int
		mockExpect   func()
		expectedResp func(*testing.T, *http.Response)
	}{
		{
			name:       "NoMessages",
			body:       schemas.ChatSchema{},
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "messages is required")
			},
		},
		{
			name:       "BadRole",
			body:       badRole,
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "role is oneof")
			},
		},
		{
			name:   "FunctionCall",
			body:   body,
			status: http.StatusOK,
			mockExpect: func() {
				d.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, req clients.ChatRequest) (*clients.ChatResponse, error) {
						require.Len(t, req.Messages, 2)
						assert.Equal(t, "system", req.Messages[0].Role)
						assert.Len(t, req.Tools, 1)
						return reply("", clients.ToolCall{
							ID:   "c1",
							Type: "function",
							Function: clients.FunctionCall{
								Name:      clients.ToolTransferSOL,
								Arguments: fmt.Sprintf(`{"destinationAddress":%q,"amount":0.5}`, dest),
							},
						}), nil
					})
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.ChatResponse
				decode(t, res, &body)
				assert.Equal(t, ChatTypeFunctionCall, body.Type)
				require.NotNil(t, body.Function)
				assert.Equal(t, dest, body.Function.Arguments.DestinationAddress)
				assert.Equal(t, 0.5, body.Function.Arguments.Amount)
			},
		},
		{
			name:   "RetryWithoutTools",
			body:   body,
			status: http.StatusOK,
			mockExpect: func() {
				gomock.InOrder(
					d.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).
						Return(nil, &clients.StatusError{Service: "deepseek", Status: http.StatusBadRequest}),
					d.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ interface{}, req clients.ChatRequest) (*clients.ChatResponse, error) {
							assert.Empty(t, req.Tools)
							return reply("Which address should I send to?"), nil
						}),
				)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.ChatResponse
				decode(t, res, &body)
				assert.Equal(t, ChatTypeMessage, body.Type)
				assert.Equal(t, "Which address should I send to?", body.Message)
			},
		},
		{
			name:   "NotConfigured",
			body:   body,
			status: http.StatusInternalServerError,
			mockExpect: func() {
				d.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, clients.ErrNoAPIKey)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusInternalServerError, "AI service is not configured")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockExpect()
			res := do(t, app, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, tt.status, res.StatusCode)
			tt.expectedResp(t, res)
		})
	}
}

func TestHandler_PetChat(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	wallet := newWallet()

	state := pet.NewState(wallet, "Ember", "dragon", testNow)

	t.Run("InCharacter", func(t *testing.T) {
		d.pets.EXPECT().Get(gomock.Any(), wallet).Return(state, nil)
		d.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, req clients.ChatRequest) (*clients.ChatResponse, error) {
				require.Len(t, req.Messages, 3)
				assert.True(t, strings.HasPrefix(req.Messages[0].Content, "You are Ember"))
				assert.Equal(t, "user", req.Messages[2].Role)
				assert.Empty(t, req.Tools)
				return reply("  Roar! Saving is fun.  "), nil
			})

		res := do(t, app, http.MethodPost, "/api/pet-chat", schemas.PetChatSchema{
			Message:       "hi",
			WalletAddress: wallet,
			History:       []schemas.AIMessageSchema{{Role: "assistant", Content: "hello"}},
		})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.MessageResponse
		decode(t, res, &body)
		assert.Equal(t, "Roar! Saving is fun.", body.Message)
	})

	t.Run("Napping", func(t *testing.T) {
		d.pets.EXPECT().Get(gomock.Any(), wallet).Return(state, nil)
		d.ai.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, Errors.New("timeout"))

		res := do(t, app, http.MethodPost, "/api/pet-chat", schemas.PetChatSchema{Message: "hi", WalletAddress: wallet})
		assertError(t, res, http.StatusInternalServerError, "Your pet is napping. Try again later.")
	})
}

func TestHandler_PetTTS(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)

	key := ttsKey("voice-1", "hello")

	t.Run("CacheHit", func(t *testing.T) {
		d.speech.EXPECT().DefaultVoice().Return("voice-1")
		d.audio.EXPECT().Get(gomock.Any(), key).Return([]byte("mp3"), "audio/mpeg", nil)

		res := do(t, app, http.MethodPost, "/api/pet-tts", schemas.PetTTSSchema{Text: "hello"})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.PetTTSResponse
		decode(t, res, &body)
		assert.True(t, body.Cached)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3")), body.Audio)
	})

	t.Run("SynthesizeAndStore", func(t *testing.T) {
		d.audio.EXPECT().Get(gomock.Any(), key).Return(nil, "", storage.ErrNotFound)
		d.speech.EXPECT().Synthesize(gomock.Any(), "voice-1", "hello").Return([]byte("fresh"), "audio/mpeg", nil)
		d.audio.EXPECT().Put(gomock.Any(), key, "audio/mpeg", []byte("fresh")).Return(Errors.New("bucket gone"))

		res := do(t, app, http.MethodPost, "/api/pet-tts", schemas.PetTTSSchema{Text: "hello", VoiceID: "voice-1"})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.PetTTSResponse
		decode(t, res, &body)
		assert.False(t, body.Cached)
		assert.Equal(t, "audio/mpeg", body.ContentType)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("fresh")), body.Audio)
	})

	t.Run("EmptyText", func(t *testing.T) {
		res := do(t, app, http.MethodPost, "/api/pet-tts", schemas.PetTTSSchema{})
		assertError(t, res, http.StatusBadRequest, "text is required")
	})
}

func TestHandler_OCR(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("DataURL", func(t *testing.T) {
		d.receipts.EXPECT().ReadReceipt(gomock.Any(), png, "image/png").Return(&clients.Receipt{
			Merchant: "Cafe",
			Total:    12.5,
			Currency: "USD",
		}, nil)

		res := do(t, app, http.MethodPost, "/api/ocr/gemini", schemas.OCRSchema{
			Image:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			MimeType: "image/png",
		})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.OCRResponse
		decode(t, res, &body)
		assert.Equal(t, "Cafe", body.Data.Merchant)
		assert.Equal(t, 12.5, body.Data.Total)
	})

	t.Run("InvalidBase64", func(t *testing.T) {
		res := do(t, app, http.MethodPost, "/api/ocr/gemini", schemas.OCRSchema{Image: "%%%", MimeType: "image/png"})
		assertError(t, res, http.StatusBadRequest, "Invalid image data")
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		res := do(t, app, http.MethodPost, "/api/ocr/gemini", schemas.OCRSchema{Image: "aGk=", MimeType: "application/pdf"})
		assertError(t, res, http.StatusBadRequest, "mimeType is oneof")
	})
}
