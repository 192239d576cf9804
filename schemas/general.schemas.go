package schemas

// ErrorResponse struct
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// OKResponse struct
type OKResponse struct {
	Success bool `json:"success"`
}

// MessageResponse struct
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WalletQuery struct
type WalletQuery struct {
	WalletAddress string `query:"walletAddress" json:"walletAddress" validate:"required,wallet"`
}

// HealthResponse struct
type HealthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
