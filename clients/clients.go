// Package clients calls the third-party HTTP APIs: DeepSeek chat
// completions, Gemini receipt OCR, ElevenLabs speech and Pinata pinning.
package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrBadRequest is returned when the upstream rejected the request with 400
	ErrBadRequest = errors.New("clients: upstream rejected request")
	ErrNoAPIKey   = errors.New("clients: api key not configured")
)

const defaultTimeout = 60 * time.Second

// StatusError is a non-2xx upstream response
type StatusError struct {
	Service string
	Status  int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Service, e.Status, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrBadRequest && e.Status == fiber.StatusBadRequest
}

// agentClient builds agents that encode with jsoniter
var agentClient = &fiber.Client{
	JSONEncoder: jsoniter.Marshal,
	JSONDecoder: jsoniter.Unmarshal,
}

// send executes a and decodes a 2xx JSON body into out when out is non-nil
func send(service string, a *fiber.Agent, timeout time.Duration, out interface{}) ([]byte, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	a.Timeout(timeout)
	a.Set("X-Request-Id", uuid.NewString())

	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s: %w", service, errs[0])
	}
	if status < 200 || status > 299 {
		return nil, &StatusError{Service: service, Status: status, Body: truncate(string(body), 512)}
	}
	if out != nil {
		if err := jsoniter.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("%s: decode response: %w", service, err)
		}
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// timeoutFor bounds an agent call by the context deadline when one is set
func timeoutFor(ctx context.Context, def time.Duration) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < def || def <= 0 {
			return left, nil
		}
	}
	return def, nil
}
