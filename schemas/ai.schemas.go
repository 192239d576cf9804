package schemas

// AIMessageSchema struct
type AIMessageSchema struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"max=8000"`
}

// ChatSchema struct
type ChatSchema struct {
	Messages      []AIMessageSchema `json:"messages" validate:"required,min=1,max=50,dive"`
	WalletAddress string            `json:"walletAddress" validate:"omitempty,wallet"`
}

// TransferArguments struct
type TransferArguments struct {
	DestinationAddress string  `json:"destinationAddress"`
	Amount             float64 `json:"amount"`
}

// FunctionCallSchema struct
type FunctionCallSchema struct {
	Name      string            `json:"name"`
	Arguments TransferArguments `json:"arguments"`
}

// ChatResponse struct; Function is set for "function_call", Message for "message"
type ChatResponse struct {
	Success  bool                `json:"success"`
	Type     string              `json:"type"`
	Function *FunctionCallSchema `json:"function,omitempty"`
	Message  string              `json:"message,omitempty"`
}

// PetChatSchema struct
type PetChatSchema struct {
	Message       string            `json:"message" validate:"required,max=2000"`
	WalletAddress string            `json:"walletAddress" validate:"required,wallet"`
	History       []AIMessageSchema `json:"history" validate:"max=30,dive"`
}

// PetTTSSchema struct
type PetTTSSchema struct {
	Text    string `json:"text" validate:"required,max=2500"`
	VoiceID string `json:"voiceId" validate:"max=64"`
}

// PetTTSResponse struct
type PetTTSResponse struct {
	Success     bool   `json:"success"`
	Audio       string `json:"audio"`
	ContentType string `json:"contentType"`
	Cached      bool   `json:"cached"`
}

// OCRSchema struct
type OCRSchema struct {
	Image    string `json:"image" validate:"required"`
	MimeType string `json:"mimeType" validate:"required,oneof=image/jpeg image/jpg image/png image/webp image/heic"`
}

// ReceiptItemSchema struct
type ReceiptItemSchema struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// ReceiptSchema struct
type ReceiptSchema struct {
	Merchant string              `json:"merchant"`
	Total    float64             `json:"total"`
	Currency string              `json:"currency"`
	Date     string              `json:"date"`
	Items    []ReceiptItemSchema `json:"items"`
}

// OCRResponse struct
type OCRResponse struct {
	Success bool          `json:"success"`
	Data    ReceiptSchema `json:"data"`
}
