package services

import (
	"fmt"
	"net/http"
	"testing"

	"solamate_server/chain"
	"solamate_server/friends"
	"solamate_server/helpers"
	"solamate_server/schemas"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetFriends(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	wallet := newWallet()
	key := solana.MustPublicKeyFromBase58(wallet)

	list := &friends.List{
		Accepted: []friends.Friend{{WalletAddress: "bob", Status: "accepted"}},
		Pending: []friends.Friend{
			{WalletAddress: "carol", Status: "pending", Direction: friends.Incoming},
			{WalletAddress: "dave", Status: "pending", Direction: friends.Outgoing},
		},
		FetchedAt: testNow,
	}

	tests := []struct {
		name         string
		url          string
		status       int
		mockExpect   func()
		expectedResp func(*testing.T, *http.Response)
	}{
		{
			name:       "InvalidWallet",
			url:        "/api/friends?walletAddress=xyz0",
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "walletAddress is wallet")
			},
		},
		{
			name:   "Cached",
			url:    "/api/friends?walletAddress=" + wallet,
			status: http.StatusOK,
			mockExpect: func() {
				d.friends.EXPECT().Load(gomock.Any(), key, false).Return(list, nil)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.FriendsResponse
				decode(t, res, &body)
				require.Len(t, body.Friends, 1)
				assert.Equal(t, "bob", body.Friends[0].WalletAddress)
				assert.Len(t, body.Pending, 2)
				require.Len(t, body.Incoming, 1)
				assert.Equal(t, "carol", body.Incoming[0].WalletAddress)
				require.Len(t, body.Outgoing, 1)
				assert.Equal(t, "dave", body.Outgoing[0].WalletAddress)
			},
		},
		{
			name:   "Refresh",
			url:    "/api/friends?refresh=true&walletAddress=" + wallet,
			status: http.StatusOK,
			mockExpect: func() {
				d.friends.EXPECT().Load(gomock.Any(), key, true).Return(list, nil)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.FriendsResponse
				decode(t, res, &body)
				assert.True(t, body.Success)
			},
		},
		{
			name:   "ChainDown",
			url:    "/api/friends?walletAddress=" + wallet,
			status: http.StatusInternalServerError,
			mockExpect: func() {
				d.friends.EXPECT().Load(gomock.Any(), key, false).Return(nil, chain.ErrChainUnavailable)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusInternalServerError, "Failed to load friends")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockExpect()
			res := do(t, app, http.MethodGet, tt.url, nil)
			assert.Equal(t, tt.status, res.StatusCode)
			tt.expectedResp(t, res)
		})
	}
}

func TestHandler_GetChatMessages(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	a, b := newWallet(), newWallet()
	sender := solana.MustPublicKeyFromBase58(a)

	room, err := h.Deriver.ChatRoomPDA(helpers.ParseWallet(a), helpers.ParseWallet(b))
	require.NoError(t, err)

	records := []chain.MessageRecord{
		{Message: chain.Message{ChatRoom: room, Sender: sender, Content: "hey", Timestamp: 1}},
		{Message: chain.Message{ChatRoom: room, Sender: sender, Content: `PAYMENT_REQUEST:{"amount":0.25,"note":"pizza"}`, Timestamp: 2}},
	}

	t.Run("ByParticipants", func(t *testing.T) {
		d.chain.EXPECT().FetchMessages(gomock.Any(), room).Return(records, nil)

		res := do(t, app, http.MethodGet, fmt.Sprintf("/api/chat-messages?a=%s&b=%s", a, b), nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.ChatMessagesResponse
		decode(t, res, &body)
		assert.Equal(t, room.String(), body.ChatRoom)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, chain.ContentText, body.Messages[0].Parsed.Kind)
		assert.Equal(t, chain.ContentPaymentRequest, body.Messages[1].Parsed.Kind)
		require.NotNil(t, body.Messages[1].Parsed.PaymentRequest)
		assert.Equal(t, "pizza", body.Messages[1].Parsed.PaymentRequest.Note)
	})

	t.Run("ByRoom", func(t *testing.T) {
		d.chain.EXPECT().FetchMessages(gomock.Any(), room).Return(nil, nil)

		res := do(t, app, http.MethodGet, "/api/chat-messages?chatRoom="+room.String(), nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.ChatMessagesResponse
		decode(t, res, &body)
		assert.Empty(t, body.Messages)
	})

	t.Run("OnlyOneParticipant", func(t *testing.T) {
		res := do(t, app, http.MethodGet, "/api/chat-messages?a="+a, nil)
		assertError(t, res, http.StatusBadRequest, "b is required_with")
	})

	t.Run("RateLimited", func(t *testing.T) {
		d.chain.EXPECT().FetchMessages(gomock.Any(), room).Return(nil, fmt.Errorf("%w: 429", chain.ErrRateLimited))

		res := do(t, app, http.MethodGet, "/api/chat-messages?chatRoom="+room.String(), nil)
		assertError(t, res, http.StatusTooManyRequests, rateLimitedDescription)
	})
}

func TestHandler_DerivePDA(t *testing.T) {
	h, _ := newTestHandler(t)
	app := newTestApp(h)
	a, b := newWallet(), newWallet()
	d := h.Deriver

	profile, err := d.ProfilePDA(helpers.ParseWallet(a))
	require.NoError(t, err)
	friendship, err := d.FriendshipPDA(helpers.ParseWallet(a), helpers.ParseWallet(b))
	require.NoError(t, err)
	funding, err := d.FundingEventPDA(helpers.ParseWallet(a), 1700000000)
	require.NoError(t, err)

	tests := []struct {
		name   string
		url    string
		status int
		want   string
		err    string
	}{
		{name: "Profile", url: "/api/pda?kind=profile&a=" + a, status: http.StatusOK, want: profile.String()},
		{name: "Friendship", url: fmt.Sprintf("/api/pda?kind=friendship&a=%s&b=%s", a, b), status: http.StatusOK, want: friendship.String()},
		{name: "FundingEvent", url: "/api/pda?kind=funding_event&timestamp=1700000000&a=" + a, status: http.StatusOK, want: funding.String()},
		{name: "FriendshipWithoutB", url: "/api/pda?kind=friendship&a=" + a, status: http.StatusBadRequest, err: "b is required"},
		{name: "UnknownKind", url: "/api/pda?kind=vault&a=" + a, status: http.StatusBadRequest, err: "kind is oneof"},
		{name: "NegativeTimestamp", url: "/api/pda?kind=message&timestamp=-1&a=" + a, status: http.StatusBadRequest, err: "timestamp is min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := do(t, app, http.MethodGet, tt.url, nil)
			if tt.err != "" {
				assertError(t, res, tt.status, tt.err)
				return
			}
			require.Equal(t, tt.status, res.StatusCode)

			var body schemas.PDAResponse
			decode(t, res, &body)
			assert.Equal(t, tt.want, body.Address)
			assert.Equal(t, testProgramID, body.ProgramID)
		})
	}
}

func TestHandler_GetExpenseStats(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	wallet := newWallet()
	key := solana.MustPublicKeyFromBase58(wallet)
	url := "/api/expenses/stats?walletAddress=" + wallet

	t.Run("NoAccount", func(t *testing.T) {
		d.chain.EXPECT().FetchExpenseStats(gomock.Any(), key).Return(nil, chain.ErrAccountNotFound)

		res := do(t, app, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.ExpenseStatsResponse
		decode(t, res, &body)
		assert.True(t, body.Success)
		assert.False(t, body.Exists)
		assert.Nil(t, body.Stats)
	})

	t.Run("Stats", func(t *testing.T) {
		d.chain.EXPECT().FetchExpenseStats(gomock.Any(), key).Return(&chain.ExpenseStats{
			Owner:            key,
			TotalSent:        1_500_000_000,
			TotalReceived:    250_000_000,
			TransactionCount: 7,
		}, nil)

		res := do(t, app, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.ExpenseStatsResponse
		decode(t, res, &body)
		require.NotNil(t, body.Stats)
		assert.Equal(t, 1.5, body.Stats.TotalSentSOL)
		assert.Equal(t, 0.25, body.Stats.TotalReceivedSOL)
		assert.Equal(t, uint64(7), body.Stats.TransactionCount)
	})
}

func TestHandler_ClassifyTransfer(t *testing.T) {
	h, _ := newTestHandler(t)
	app := newTestApp(h)

	res := do(t, app, http.MethodPost, "/api/transfer-error", schemas.TransferErrorSchema{Error: "WalletSignTransactionError: User rejected the request."})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body schemas.TransferErrorResponse
	decode(t, res, &body)
	assert.Equal(t, helpers.TransferUserRejected, body.Kind)
	assert.Equal(t, "Transaction was cancelled in your wallet.", body.Message)
}
