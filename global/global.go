package global

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// InternalLogger logs failures that should never happen in normal circumstances
var InternalLogger = zap.NewNop()

// MonitorLogger logs client errors and complex errors worth watching
var MonitorLogger = zap.NewNop()

// Session for global cassandra cql session
var Session *gocql.Session

// RedisClient for global redis queries
var RedisClient *redis.Client

// MinIOClient for global min io access
var MinIOClient *minio.Client

// JwtKey signs and verifies stream tokens
var JwtKey []byte

// StreamTokenDuration is how long a stream token stays valid
var StreamTokenDuration = 24 * time.Hour

// NonceDuration is how long a sign-in nonce may be redeemed
var NonceDuration = 5 * time.Minute

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodys of data. Errors name fields by their
// json tag, and the "wallet" tag checks for a base58 public key.
var Validator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("wallet", func(fl validator.FieldLevel) bool {
		_, err := solana.PublicKeyFromBase58(fl.Field().String())
		return err == nil
	})
	return v
}()

// InitLoggers builds the named loggers for mode ("prod" or "dev") and
// installs the base logger as zap's global
func InitLoggers(mode string) error {
	var (
		base *zap.Logger
		err  error
	)
	if mode == "prod" {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(base)
	InternalLogger = base.Named("internal")
	MonitorLogger = base.Named("monitor")
	return nil
}
