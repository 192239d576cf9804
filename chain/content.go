package chain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Content prefixes carried inside the free-text message field
const (
	PaymentRequestPrefix  = "PAYMENT_REQUEST:"
	TransferSuccessPrefix = "TRANSFER_SUCCESS:"
)

// ContentKind is the informal sub-type of a message
type ContentKind string

const (
	ContentText            ContentKind = "text"
	ContentPaymentRequest  ContentKind = "payment_request"
	ContentTransferSuccess ContentKind = "transfer_success"
)

// PaymentRequest is the payload behind PAYMENT_REQUEST:
type PaymentRequest struct {
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient,omitempty"`
	Note      string  `json:"note,omitempty"`
	Status    string  `json:"status,omitempty"`
}

// TransferSuccess is the payload behind TRANSFER_SUCCESS:
type TransferSuccess struct {
	Amount    float64 `json:"amount"`
	Signature string  `json:"signature,omitempty"`
	Recipient string  `json:"recipient,omitempty"`
}

// ParsedContent is a message body split into its sub-type
type ParsedContent struct {
	Kind            ContentKind      `json:"kind"`
	Text            string           `json:"text,omitempty"`
	PaymentRequest  *PaymentRequest  `json:"paymentRequest,omitempty"`
	TransferSuccess *TransferSuccess `json:"transferSuccess,omitempty"`
}

// ParseMessageContent recognises the payment prefixes. A prefixed body whose
// payload does not parse falls back to plain text.
func ParseMessageContent(content string) ParsedContent {
	switch {
	case strings.HasPrefix(content, PaymentRequestPrefix):
		req := new(PaymentRequest)
		if err := jsoniter.UnmarshalFromString(strings.TrimPrefix(content, PaymentRequestPrefix), req); err == nil {
			return ParsedContent{Kind: ContentPaymentRequest, PaymentRequest: req}
		}
	case strings.HasPrefix(content, TransferSuccessPrefix):
		ok := new(TransferSuccess)
		if err := jsoniter.UnmarshalFromString(strings.TrimPrefix(content, TransferSuccessPrefix), ok); err == nil {
			return ParsedContent{Kind: ContentTransferSuccess, TransferSuccess: ok}
		}
	}
	return ParsedContent{Kind: ContentText, Text: content}
}

// FormatPaymentRequest builds a PAYMENT_REQUEST: body
func FormatPaymentRequest(req PaymentRequest) (string, error) {
	s, err := jsoniter.MarshalToString(req)
	if err != nil {
		return "", err
	}
	return PaymentRequestPrefix + s, nil
}
