package services

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	Errors "errors"
	"fmt"
	"strings"

	"solamate_server/clients"
	"solamate_server/errors"
	"solamate_server/global"
	"solamate_server/helpers"
	"solamate_server/pet"
	"solamate_server/schemas"
	"solamate_server/storage"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	ChatTypeFunctionCall = "function_call"
	ChatTypeMessage      = "message"
)

const chatSystemPrompt = `You are SolaMate, a friendly assistant inside a Solana wallet app. You help users send SOL, split bills, understand their spending and chat with friends. Keep answers short. When the user clearly asks to send or pay SOL to an address, call the transfer_sol function with the destination address and the amount in SOL. Never ask for private keys or seed phrases.`

func aiError(c *fiber.Ctx, op string, err error, description string) error {
	if Errors.Is(err, clients.ErrNoAPIKey) {
		return errors.HandleServiceError(c, op, err.Error(), "AI service is not configured")
	}
	return errors.HandleServiceError(c, op, err.Error(), description)
}

func toChatMessages(in []schemas.AIMessageSchema) []clients.ChatMessage {
	out := make([]clients.ChatMessage, 0, len(in))
	for _, m := range in {
		out = append(out, clients.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

// Chat proxies a conversation to the assistant, which may answer with a
// transfer_sol function call. An upstream that rejects tools is retried
// once without them.
func (h *Handler) Chat(c *fiber.Ctx) error {
	const op = "chat.post.svc"

	req := new(schemas.ChatSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	system := chatSystemPrompt
	if req.WalletAddress != "" {
		system += "\nThe user's wallet address is " + req.WalletAddress + "."
	}

	creq := clients.ChatRequest{
		Messages: append([]clients.ChatMessage{{Role: "system", Content: system}}, toChatMessages(req.Messages)...),
		Tools:    []clients.Tool{clients.TransferSOLTool},
	}

	res, err := h.AI.Complete(c.UserContext(), creq)
	if Errors.Is(err, clients.ErrBadRequest) {
		global.MonitorLogger.Info("retrying chat without tools", zap.String("op", op), zap.Error(err))
		creq.Tools = nil
		res, err = h.AI.Complete(c.UserContext(), creq)
	}
	if err != nil {
		return aiError(c, op, err, "Failed to get AI response")
	}

	msg, ok := res.First()
	if !ok {
		return errors.HandleServiceError(c, op, "no choices", "Failed to get AI response")
	}

	for _, call := range msg.ToolCalls {
		if call.Function.Name != clients.ToolTransferSOL {
			continue
		}
		var args schemas.TransferArguments
		if err := jsoniter.UnmarshalFromString(call.Function.Arguments, &args); err != nil {
			global.MonitorLogger.Warn("bad tool arguments", zap.String("op", op), zap.String("arguments", call.Function.Arguments))
			continue
		}
		return c.JSON(schemas.ChatResponse{
			Success: true,
			Type:    ChatTypeFunctionCall,
			Function: &schemas.FunctionCallSchema{
				Name:      call.Function.Name,
				Arguments: args,
			},
		})
	}

	return c.JSON(schemas.ChatResponse{
		Success: true,
		Type:    ChatTypeMessage,
		Message: msg.Content,
	})
}

func mood(s *pet.State) string {
	switch {
	case s.Happiness >= 80:
		return "very happy"
	case s.Happiness >= 50:
		return "content"
	case s.Happiness >= 20:
		return "a bit lonely"
	default:
		return "sad and in need of attention"
	}
}

// petPersona is the system prompt the pet speaks with
func petPersona(s *pet.State) string {
	trait := pet.TraitOf(s.Type)
	return fmt.Sprintf(`You are %s, a level %d pet %s living in the SolaMate wallet app. Your personality: %s. Right now you feel %s and your energy is %d out of 100. Talk to your owner in one to three short sentences, stay in character, and cheer on good money habits like saving and paying friends back. Never ask for private keys or seed phrases.`,
		s.Name, s.Level, strings.ToLower(trait.Name), trait.Personality, mood(s), s.Energy)
}

// PetChat lets the wallet's pet answer a message in character
func (h *Handler) PetChat(c *fiber.Ctx) error {
	const op = "pet-chat.post.svc"

	req := new(schemas.PetChatSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	state, err := h.Pets.Get(c.UserContext(), req.WalletAddress)
	if err != nil {
		return errors.HandleInternalError(c, op, "Redis: "+err.Error())
	}

	msgs := append([]clients.ChatMessage{{Role: "system", Content: petPersona(state)}}, toChatMessages(req.History)...)
	msgs = append(msgs, clients.ChatMessage{Role: "user", Content: req.Message})

	res, err := h.AI.Complete(c.UserContext(), clients.ChatRequest{
		Messages:    msgs,
		Temperature: 0.8,
		MaxTokens:   200,
	})
	if err != nil {
		return aiError(c, op, err, "Your pet is napping. Try again later.")
	}

	msg, ok := res.First()
	if !ok {
		return errors.HandleServiceError(c, op, "no choices", "Your pet is napping. Try again later.")
	}

	return c.JSON(schemas.MessageResponse{
		Success: true,
		Message: strings.TrimSpace(msg.Content),
	})
}

// ttsKey names the cached audio of text spoken by voice
func ttsKey(voice, text string) string {
	sum := sha256.Sum256([]byte(voice + "\x00" + text))
	return hex.EncodeToString(sum[:]) + ".mp3"
}

// PetTTS speaks text with ElevenLabs and caches the audio for a day
func (h *Handler) PetTTS(c *fiber.Ctx) error {
	const op = "pet-tts.post.svc"

	req := new(schemas.PetTTSSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	voice := req.VoiceID
	if voice == "" {
		voice = h.Speech.DefaultVoice()
	}
	key := ttsKey(voice, req.Text)

	if h.Audio != nil {
		data, contentType, err := h.Audio.Get(c.UserContext(), key)
		if err == nil {
			return c.JSON(schemas.PetTTSResponse{
				Success:     true,
				Audio:       base64.StdEncoding.EncodeToString(data),
				ContentType: contentType,
				Cached:      true,
			})
		}
		if !Errors.Is(err, storage.ErrNotFound) {
			global.MonitorLogger.Warn("tts cache read failed", zap.String("op", op), zap.Error(err))
		}
	}

	audio, contentType, err := h.Speech.Synthesize(c.UserContext(), voice, req.Text)
	if err != nil {
		if Errors.Is(err, clients.ErrNoAPIKey) {
			return errors.HandleServiceError(c, op, err.Error(), "Speech service is not configured")
		}
		return errors.HandleServiceError(c, op, err.Error(), "Failed to generate speech")
	}

	if h.Audio != nil {
		if err := h.Audio.Put(c.UserContext(), key, contentType, audio); err != nil {
			global.MonitorLogger.Warn("tts cache write failed", zap.String("op", op), zap.Error(err))
		}
	}

	return c.JSON(schemas.PetTTSResponse{
		Success:     true,
		Audio:       base64.StdEncoding.EncodeToString(audio),
		ContentType: contentType,
	})
}

// stripDataURL drops a "data:<type>;base64," prefix
func stripDataURL(s string) string {
	if helpers.IsDataURL(s) {
		if _, payload, ok := strings.Cut(s, ","); ok {
			return payload
		}
	}
	return s
}

// OCR reads a receipt image into structured fields
func (h *Handler) OCR(c *fiber.Ctx) error {
	const op = "ocr.gemini.svc"

	req := new(schemas.OCRSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	image, err := base64.StdEncoding.DecodeString(stripDataURL(req.Image))
	if err != nil || len(image) == 0 {
		return errors.HandleBadRequestError(c, "image", "Invalid image data")
	}

	receipt, err := h.Receipts.ReadReceipt(c.UserContext(), image, req.MimeType)
	if err != nil {
		return aiError(c, op, err, "Failed to read receipt")
	}

	return c.JSON(schemas.OCRResponse{
		Success: true,
		Data:    helpers.ReceiptToSchema(receipt),
	})
}
