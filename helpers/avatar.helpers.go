package helpers

import (
	"encoding/base64"
	Errors "errors"
	"strings"
)

// MaxAvatarSize bounds decoded avatar images
const MaxAvatarSize = 5 << 20

var (
	ErrInvalidDataURL = Errors.New("invalid data url")
	ErrAvatarTooLarge = Errors.New("avatar too large")
)

var avatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

// IsDataURL reports whether avatar carries inline image data rather than a file name
func IsDataURL(avatar string) bool {
	return strings.HasPrefix(avatar, "data:")
}

// ParseDataURL decodes "data:<type>;base64,<payload>"
func ParseDataURL(dataURL string) ([]byte, string, error) {
	if !IsDataURL(dataURL) {
		return nil, "", ErrInvalidDataURL
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok {
		return nil, "", ErrInvalidDataURL
	}
	contentType, enc, _ := strings.Cut(header, ";")
	if enc != "base64" || !avatarTypes[contentType] {
		return nil, "", ErrInvalidDataURL
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxAvatarSize {
		return nil, "", ErrAvatarTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidDataURL
	}
	return data, contentType, nil
}
