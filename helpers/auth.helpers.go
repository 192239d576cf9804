package helpers

import (
	Errors "errors"
	"fmt"
	"time"

	"solamate_server/global"

	"github.com/gagliardetto/solana-go"
	"github.com/golang-jwt/jwt"
)

var (
	ErrTokenExpired     = Errors.New("token expired")
	ErrTokenInvalid     = Errors.New("token invalid")
	ErrInvalidSignature = Errors.New("invalid signature")
)

// GenerateJWT generates a stream token for a wallet
func GenerateJWT(wallet string, now time.Time) (string, int64, error) {
	exp := now.Add(global.StreamTokenDuration).Unix()
	claims := jwt.MapClaims{}
	claims["wallet"] = wallet
	claims["exp"] = exp
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := jt.SignedString(global.JwtKey)
	if err != nil {
		return "", 0, err
	}
	return token, exp, nil
}

// ParseJWT parses a stream token to its wallet
func ParseJWT(jwtString string) (string, error) {
	token, err := jwt.Parse(jwtString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return global.JwtKey, nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if Errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrTokenInvalid
	}
	wallet, ok := claims["wallet"].(string)
	if !ok || wallet == "" {
		return "", ErrTokenInvalid
	}
	return wallet, nil
}

// SignInMessage is the exact text a wallet signs to obtain a stream token
func SignInMessage(wallet, nonce string, expiresAt int64) string {
	return fmt.Sprintf("Sign in to SolaMate\n\nWallet: %s\nNonce: %s\nExpires: %d", wallet, nonce, expiresAt)
}

// VerifySignature checks a base58 ed25519 signature of message by wallet
func VerifySignature(wallet, message, signature string) error {
	pub, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return ErrInvalidSignature
	}
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return ErrInvalidSignature
	}
	if !sig.Verify(pub, []byte(message)) {
		return ErrInvalidSignature
	}
	return nil
}
