package schemas

import "time"

// ProfileSchema struct
type ProfileSchema struct {
	WalletAddress string    `json:"walletAddress"`
	Username      string    `json:"username"`
	DisplayName   string    `json:"displayName"`
	HasAvatar     bool      `json:"hasAvatar"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// GetProfileResponse struct
type GetProfileResponse struct {
	Success bool           `json:"success"`
	Exists  bool           `json:"exists"`
	Profile *ProfileSchema `json:"profile,omitempty"`
}

// SaveProfileSchema struct
type SaveProfileSchema struct {
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	Username      string `json:"username" validate:"required,min=3,max=20"`
	DisplayName   string `json:"displayName" validate:"max=50"`
	Avatar        string `json:"avatar" validate:"max=7000000"`
}

// SaveProfileResponse struct
type SaveProfileResponse struct {
	Success bool          `json:"success"`
	Profile ProfileSchema `json:"profile"`
}

// AvatarResponse struct is sent when the avatar is a plain file name
type AvatarResponse struct {
	Success bool   `json:"success"`
	Avatar  string `json:"avatar"`
}

// UsersResponse struct
type UsersResponse struct {
	Success bool            `json:"success"`
	Users   []ProfileSchema `json:"users"`
}

// SearchUsersQuery struct
type SearchUsersQuery struct {
	Query   string `query:"query" json:"query" validate:"max=100"`
	Limit   int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=50"`
	Exclude string `query:"exclude" json:"exclude"`
}
