package helpers

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"solamate_server/schemas"

	"github.com/gagliardetto/solana-go"
	"github.com/gofiber/fiber/v2"
)

// LamportsPerSOL converts on-chain amounts for display
const LamportsPerSOL = 1_000_000_000

// RandomTokenString generates random hex token
func RandomTokenString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// OKResponse sends a successful request/response
func OKResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(schemas.OKResponse{
		Success: true,
	})
}

// MilisecondsToTime converts milliseconds since epoch to golang time object
func MilisecondsToTime(milli int64) time.Time {
	return time.UnixMilli(milli)
}

// ParseStringToInt parses string to int
func ParseStringToInt(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}

// ParseWallet parses an already validated base58 address
func ParseWallet(address string) solana.PublicKey {
	return solana.MustPublicKeyFromBase58(address)
}

// LamportsToSOL converts lamports to SOL
func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / LamportsPerSOL
}
