package clients

import (
	"context"
	"encoding/base64"
	"errors"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var ErrEmptyResponse = errors.New("clients: empty model response")

// ReceiptItem is one line of a scanned receipt
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// Receipt is the structured result of receipt OCR
type Receipt struct {
	Merchant string        `json:"merchant"`
	Total    float64       `json:"total"`
	Currency string        `json:"currency"`
	Date     string        `json:"date"`
	Items    []ReceiptItem `json:"items"`
}

const receiptPrompt = `Extract the receipt in this image as JSON with exactly these fields:
{"merchant": string, "total": number, "currency": ISO 4217 code, "date": "YYYY-MM-DD", "items": [{"name": string, "quantity": number, "price": number}]}
Use an empty string or 0 for anything that cannot be read. Reply with JSON only.`

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig map[string]interface{} `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Gemini calls the Gemini generateContent API
type Gemini struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ReadReceipt extracts receipt fields from an image
func (g *Gemini) ReadReceipt(ctx context.Context, image []byte, mimeType string) (*Receipt, error) {
	if g.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	timeout, err := timeoutFor(ctx, g.Timeout)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(g.BaseURL, "/") + "/models/" + g.Model + ":generateContent?key=" + url.QueryEscape(g.APIKey)
	a := agentClient.Post(endpoint)
	a.JSON(geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: receiptPrompt},
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			},
		}},
		GenerationConfig: map[string]interface{}{
			"response_mime_type": "application/json",
			"temperature":        0,
		},
	})

	res := new(geminiResponse)
	if _, err := send("gemini", a, timeout, res); err != nil {
		return nil, err
	}
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	receipt := new(Receipt)
	if err := jsoniter.UnmarshalFromString(stripFence(res.Candidates[0].Content.Parts[0].Text), receipt); err != nil {
		return nil, err
	}
	if receipt.Items == nil {
		receipt.Items = []ReceiptItem{}
	}
	return receipt, nil
}

// stripFence removes a ```json fence models sometimes wrap output in
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
