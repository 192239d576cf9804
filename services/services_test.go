package services

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solamate_server/chain"
	"solamate_server/errors"
	"solamate_server/middlewares"
	"solamate_server/mocks"
	"solamate_server/schemas"

	"github.com/gagliardetto/solana-go"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	profiles      *mocks.MockProfileStore
	avatars       *mocks.MockObjectStore
	audio         *mocks.MockObjectStore
	notifications *mocks.MockNotificationStore
	nonces        *mocks.MockNonceStore
	events        *mocks.MockEventPublisher
	ai            *mocks.MockChatCompleter
	receipts      *mocks.MockReceiptReader
	speech        *mocks.MockSpeechSynthesizer
	ipfs          *mocks.MockPinner
	friends       *mocks.MockFriendsLoader
	chain         *mocks.MockChainReader
	pets          *mocks.MockPetEngine
}

func newTestHandler(t *testing.T) (*Handler, *testDeps) {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		profiles:      mocks.NewMockProfileStore(ctrl),
		avatars:       mocks.NewMockObjectStore(ctrl),
		audio:         mocks.NewMockObjectStore(ctrl),
		notifications: mocks.NewMockNotificationStore(ctrl),
		nonces:        mocks.NewMockNonceStore(ctrl),
		events:        mocks.NewMockEventPublisher(ctrl),
		ai:            mocks.NewMockChatCompleter(ctrl),
		receipts:      mocks.NewMockReceiptReader(ctrl),
		speech:        mocks.NewMockSpeechSynthesizer(ctrl),
		ipfs:          mocks.NewMockPinner(ctrl),
		friends:       mocks.NewMockFriendsLoader(ctrl),
		chain:         mocks.NewMockChainReader(ctrl),
		pets:          mocks.NewMockPetEngine(ctrl),
	}
	h := New(Handler{
		Profiles:      d.profiles,
		Avatars:       d.avatars,
		Audio:         d.audio,
		Notifications: d.notifications,
		Nonces:        d.nonces,
		Events:        d.events,
		AI:            d.ai,
		Receipts:      d.receipts,
		Speech:        d.speech,
		IPFS:          d.ipfs,
		Friends:       d.friends,
		Chain:         d.chain,
		Deriver:       chain.NewDeriver(solana.MustPublicKeyFromBase58(testProgramID)),
		Pets:          d.pets,
		Now:           func() time.Time { return testNow },
	})
	return h, d
}

const testProgramID = "SoLMateXr5S2ZCdQmiTqHCNQr7PVVVJPLFqJszuXDKA"

func newTestApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errors.ErrorHandler,
		JSONEncoder:  jsoniter.Marshal,
		JSONDecoder:  jsoniter.Unmarshal,
	})
	api := app.Group("/api")

	api.Post("/auth/nonce", h.Nonce)
	api.Post("/auth/verify", h.Verify)

	api.Get("/profile", middlewares.RequireWallet, h.GetProfile)
	api.Post("/profile", h.SaveProfile)
	api.Get("/avatar", middlewares.RequireWallet, h.GetAvatar)
	api.Get("/users", h.GetUsers)
	api.Get("/search-users", h.SearchUsers)

	api.Get("/notifications", h.GetNotifications)
	api.Post("/notifications", h.CreateNotification)
	api.Patch("/notifications", h.MarkNotificationRead)
	api.Delete("/notifications", h.DeleteNotifications)

	api.Post("/chat", h.Chat)
	api.Post("/pet-chat", h.PetChat)
	api.Post("/pet-tts", h.PetTTS)
	api.Post("/ocr/gemini", h.OCR)

	api.Post("/ipfs/upload", h.UploadFile)
	api.Post("/ipfs/upload-json", h.UploadJSON)

	api.Get("/friends", h.GetFriends)
	api.Get("/chat-messages", h.GetChatMessages)
	api.Get("/pda", h.DerivePDA)
	api.Get("/expenses/stats", middlewares.RequireWallet, h.GetExpenseStats)
	api.Post("/transfer-error", h.ClassifyTransfer)

	api.Get("/pet", middlewares.RequireWallet, h.GetPet)
	api.Post("/pet/adopt", h.AdoptPet)
	api.Post("/pet/rename", h.RenamePet)
	api.Post("/pet/feed", h.FeedPet)
	api.Post("/pet/play", h.PlayPet)
	api.Post("/pet/xp", h.AddPetXP)
	api.Get("/pet/tasks", middlewares.RequireWallet, h.GetTasks)
	api.Post("/pet/tasks/progress", h.TaskProgress)

	app.Get("/health", h.Health)
	return app
}

func newWallet() string {
	return solana.NewWallet().PublicKey().String()
}

// do sends a request with body encoded as JSON, or sent raw when it is a string
func do(t *testing.T, app *fiber.App, method, url string, body interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, url, nil)
	case string:
		req = httptest.NewRequest(method, url, bytes.NewBufferString(b))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	default:
		data, err := jsoniter.Marshal(b)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(data))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decode(t *testing.T, res *http.Response, v interface{}) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, jsoniter.NewDecoder(res.Body).Decode(v))
}

func assertError(t *testing.T, res *http.Response, status int, message string) {
	t.Helper()
	assert.Equal(t, status, res.StatusCode)
	var body schemas.ErrorResponse
	decode(t, res, &body)
	assert.False(t, body.Success)
	assert.Equal(t, message, body.Error)
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	app := newTestApp(h)

	res := do(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body schemas.HealthResponse
	decode(t, res, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, testNow.UnixMilli(), body.Timestamp)
}
