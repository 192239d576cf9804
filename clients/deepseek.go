package clients

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ToolTransferSOL is the function the assistant may call to start a transfer
const ToolTransferSOL = "transfer_sol"

// ChatMessage is an OpenAI-compatible chat message
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is a function call chosen by the model
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the raw JSON arguments of a tool call
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool declares a callable function
type Tool struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef is a JSON-schema described function
type FunctionDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ChatRequest is a chat completion request. Model is filled from the client
// when empty.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Tools       []Tool        `json:"tools,omitempty"`
	ToolChoice  string        `json:"tool_choice,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatChoice is one completion alternative
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatResponse is a chat completion response
type ChatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

// First returns the first choice's message, if any
func (r *ChatResponse) First() (ChatMessage, bool) {
	if r == nil || len(r.Choices) == 0 {
		return ChatMessage{}, false
	}
	return r.Choices[0].Message, true
}

// TransferSOLTool lets the assistant propose a SOL transfer
var TransferSOLTool = Tool{
	Type: "function",
	Function: FunctionDef{
		Name:        ToolTransferSOL,
		Description: "Send SOL from the user's wallet to another Solana address. Only call this when the user clearly asks to send or pay SOL.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"destinationAddress": map[string]interface{}{
					"type":        "string",
					"description": "Base58 Solana address of the recipient",
				},
				"amount": map[string]interface{}{
					"type":        "number",
					"description": "Amount of SOL to send",
				},
			},
			"required": []string{"destinationAddress", "amount"},
		},
	},
}

// DeepSeek calls the DeepSeek chat completions API
type DeepSeek struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Complete runs one chat completion
func (d *DeepSeek) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if d.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	timeout, err := timeoutFor(ctx, d.Timeout)
	if err != nil {
		return nil, err
	}
	if req.Model == "" {
		req.Model = d.Model
	}

	a := agentClient.Post(strings.TrimRight(d.BaseURL, "/") + "/chat/completions")
	a.Set(fiber.HeaderAuthorization, "Bearer "+d.APIKey)
	a.JSON(req)

	res := new(ChatResponse)
	if _, err := send("deepseek", a, timeout, res); err != nil {
		return nil, err
	}
	return res, nil
}
