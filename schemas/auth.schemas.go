package schemas

// NonceSchema struct
type NonceSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
}

// NonceResponse struct; Message is the exact text the wallet must sign
type NonceResponse struct {
	Success   bool   `json:"success"`
	Nonce     string `json:"nonce"`
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expiresAt"`
}

// VerifySchema struct
type VerifySchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	Nonce         string `json:"nonce" validate:"required,max=64"`
	Signature     string `json:"signature" validate:"required,max=128"`
	ExpiresAt     int64  `json:"expiresAt" validate:"required"`
}

// VerifyResponse struct
type VerifyResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
