package services

import (
	"encoding/base64"
	Errors "errors"
	"io"
	"net/http"
	"testing"

	"solamate_server/schemas"
	"solamate_server/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetProfile(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	wallet := newWallet()

	tests := []struct {
		name         string
		url          string
		status       int
		mockExpect   func()
		expectedResp func(*testing.T, *http.Response)
	}{
		{
			name:       "MissingWallet",
			url:        "/api/profile",
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "walletAddress is required")
			},
		},
		{
			name:       "InvalidWallet",
			url:        "/api/profile?walletAddress=not-a-key",
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "walletAddress is wallet")
			},
		},
		{
			name:   "NotFound",
			url:    "/api/profile?walletAddress=" + wallet,
			status: http.StatusOK,
			mockExpect: func() {
				d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(nil, storage.ErrNotFound)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.GetProfileResponse
				decode(t, res, &body)
				assert.True(t, body.Success)
				assert.False(t, body.Exists)
				assert.Nil(t, body.Profile)
			},
		},
		{
			name:   "Found",
			url:    "/api/profile?walletAddress=" + wallet,
			status: http.StatusOK,
			mockExpect: func() {
				d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(&storage.Profile{
					WalletAddress: wallet,
					Username:      "alice",
					DisplayName:   "Alice",
					Avatar:        "cat.png",
				}, nil)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.GetProfileResponse
				decode(t, res, &body)
				assert.True(t, body.Exists)
				require.NotNil(t, body.Profile)
				assert.Equal(t, "alice", body.Profile.Username)
				assert.True(t, body.Profile.HasAvatar)
			},
		},
		{
			name:   "StoreFailure",
			url:    "/api/profile?walletAddress=" + wallet,
			status: http.StatusInternalServerError,
			mockExpect: func() {
				d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(nil, Errors.New("timeout"))
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusInternalServerError, "Internal server error")
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

func TestHandler_SaveProfile(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	wallet := newWallet()
	png := []byte{0x89, 'P', 'N', 'G'}

	tests := []struct {
		name         string
		body         interface{}
		status       int
		mockExpect   func()
		expectedResp func(*testing.T, *http.Response)
	}{
		{
			name:       "BadJSON",
			body:       `{"walletAddress":`,
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "Invalid JSON body")
			},
		},
		{
			name: "UsernameTooShort",
			body: schemas.SaveProfileSchema{
				WalletAddress: wallet,
				Username:      "ab",
			},
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "username is min")
			},
		},
		{
			name: "InvalidAvatar",
			body: schemas.SaveProfileSchema{
				WalletAddress: wallet,
				Username:      "alice",
				Avatar:        "data:text/plain;base64,aGk=",
			},
			status:     http.StatusBadRequest,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusBadRequest, "Invalid avatar image")
			},
		},
		{
			name: "UsernameTaken",
			body: schemas.SaveProfileSchema{
				WalletAddress: wallet,
				Username:      "alice",
			},
			status: http.StatusConflict,
			mockExpect: func() {
				d.profiles.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, storage.ErrUsernameTaken)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusConflict, storage.ErrUsernameTaken.Error())
			},
		},
		{
			name: "PlainAvatar",
			body: schemas.SaveProfileSchema{
				WalletAddress: wallet,
				Username:      "alice",
				DisplayName:   "Alice",
				Avatar:        "fox.png",
			},
			status: http.StatusOK,
			mockExpect: func() {
				d.profiles.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, p *storage.Profile) (*storage.Profile, error) {
						assert.Equal(t, "fox.png", p.Avatar)
						return p, nil
					})
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.SaveProfileResponse
				decode(t, res, &body)
				assert.True(t, body.Success)
				assert.Equal(t, "Alice", body.Profile.DisplayName)
				assert.True(t, body.Profile.HasAvatar)
			},
		},
		{
			name: "UploadedAvatar",
			body: schemas.SaveProfileSchema{
				WalletAddress: wallet,
				Username:      "alice",
				Avatar:        "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			},
			status: http.StatusOK,
			mockExpect: func() {
				gomock.InOrder(
					d.avatars.EXPECT().Put(gomock.Any(), wallet, "image/png", png).Return(nil),
					d.profiles.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ interface{}, p *storage.Profile) (*storage.Profile, error) {
							assert.Empty(t, p.Avatar)
							assert.True(t, p.HasAvatar)
							return p, nil
						}),
				)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				var body schemas.SaveProfileResponse
				decode(t, res, &body)
				assert.True(t, body.Profile.HasAvatar)
			},
		},
		{
			name: "AvatarUploadFailsBeforeSave",
			body: schemas.SaveProfileSchema{
				WalletAddress: wallet,
				Username:      "alice",
				Avatar:        "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			},
			status: http.StatusInternalServerError,
			mockExpect: func() {
				d.avatars.EXPECT().Put(gomock.Any(), wallet, "image/png", png).Return(Errors.New("minio down"))
				d.profiles.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedResp: func(t *testing.T, res *http.Response) {
				assertError(t, res, http.StatusInternalServerError, "Internal server error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockExpect()
			res := do(t, app, http.MethodPost, "/api/profile", tt.body)
			assert.Equal(t, tt.status, res.StatusCode)
			tt.expectedResp(t, res)
		})
	}
}

func TestHandler_GetAvatar(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)
	wallet := newWallet()
	url := "/api/avatar?walletAddress=" + wallet

	t.Run("ProfileNotFound", func(t *testing.T) {
		d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(nil, storage.ErrNotFound)
		assertError(t, do(t, app, http.MethodGet, url, nil), http.StatusNotFound, "Profile not found")
	})

	t.Run("NoAvatar", func(t *testing.T) {
		d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(&storage.Profile{WalletAddress: wallet}, nil)
		assertError(t, do(t, app, http.MethodGet, url, nil), http.StatusNotFound, "Avatar not found")
	})

	t.Run("PlainName", func(t *testing.T) {
		d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(&storage.Profile{WalletAddress: wallet, Avatar: "fox.png"}, nil)
		res := do(t, app, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.AvatarResponse
		decode(t, res, &body)
		assert.Equal(t, "fox.png", body.Avatar)
	})

	t.Run("Uploaded", func(t *testing.T) {
		d.profiles.EXPECT().Get(gomock.Any(), wallet).Return(&storage.Profile{WalletAddress: wallet, HasAvatar: true}, nil)
		d.avatars.EXPECT().Get(gomock.Any(), wallet).Return([]byte("img"), "image/webp", nil)

		res := do(t, app, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "image/webp", res.Header.Get("Content-Type"))

		data, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		assert.Equal(t, "img", string(data))
	})
}

func TestHandler_SearchUsers(t *testing.T) {
	h, d := newTestHandler(t)
	app := newTestApp(h)

	t.Run("DefaultLimit", func(t *testing.T) {
		d.profiles.EXPECT().Search(gomock.Any(), "ali", "", defaultSearchLimit).Return([]storage.Profile{
			{WalletAddress: "w1", Username: "alice"},
		}, nil)

		res := do(t, app, http.MethodGet, "/api/search-users?query=ali", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.UsersResponse
		decode(t, res, &body)
		require.Len(t, body.Users, 1)
		assert.Equal(t, "alice", body.Users[0].Username)
	})

	t.Run("LimitTooLarge", func(t *testing.T) {
		res := do(t, app, http.MethodGet, "/api/search-users?query=ali&limit=500", nil)
		assertError(t, res, http.StatusBadRequest, "limit is max")
	})

	t.Run("Users", func(t *testing.T) {
		d.profiles.EXPECT().List(gomock.Any()).Return([]storage.Profile{{Username: "a"}, {Username: "b"}}, nil)

		res := do(t, app, http.MethodGet, "/api/users", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.UsersResponse
		decode(t, res, &body)
		assert.Len(t, body.Users, 2)
	})
}
