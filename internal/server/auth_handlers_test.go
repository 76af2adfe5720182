package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ladle/internal/config"
	"ladle/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newAuthTestApp(repo *MockUserRepository) (*fiber.App, *Server) {
	app := fiber.New()
	s := &Server{
		config:   &config.Config{JWTSecret: "test-secret", Port: "8080"},
		userRepo: repo,
	}
	app.Post("/auth/register", s.Register)
	app.Post("/auth/login", s.Login)
	return app, s
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(repo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"username": "alice", "password": "hunter22"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Username",
			body: map[string]string{"username": "alice", "password": "hunter22"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "alice").
					Return(&models.User{ID: 1, Username: "alice"}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Missing Username",
			body:           map[string]string{"password": "hunter22"},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Password",
			body:           map[string]string{"username": "alice"},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Whitespace Username",
			body:           map[string]string{"username": "   ", "password": "hunter22"},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			app, _ := newAuthTestApp(repo)

			resp := postJSON(t, app, "/auth/register", tt.body)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			repo.AssertExpectations(t)
		})
	}
}

func TestRegister_ConcurrentInsertConflict(t *testing.T) {
	// GetByUsername sees no user, but the insert itself hits the
	// unique index. The repository's Conflict error must surface as 409.
	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(models.NewConflictError("username already exists"))
	app, _ := newAuthTestApp(repo)

	resp := postJSON(t, app, "/auth/register", map[string]string{
		"username": "alice",
		"password": "hunter22",
	})
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 42, Username: "alice", PasswordHash: string(hash), Role: models.RoleUser}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(repo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"username": "alice", "password": "hunter22"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unknown User",
			body: map[string]string{"username": "mallory", "password": "hunter22"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "mallory").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong Password",
			body: map[string]string{"username": "alice", "password": "wrong"},
			mockSetup: func(repo *MockUserRepository) {
				repo.On("GetByUsername", mock.Anything, "alice").Return(stored, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Fields",
			body:           map[string]string{"username": "alice"},
			mockSetup:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			app, _ := newAuthTestApp(repo)

			resp := postJSON(t, app, "/auth/login", tt.body)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLogin_IdenticalErrorForUnknownUserAndWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&models.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)
	repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, nil)
	app, _ := newAuthTestApp(repo)

	readError := func(body map[string]string) (int, string) {
		resp := postJSON(t, app, "/auth/login", body)
		defer func() { _ = resp.Body.Close() }()
		var out models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp.StatusCode, out.Error
	}

	wrongPassStatus, wrongPassMsg := readError(map[string]string{"username": "alice", "password": "nope"})
	unknownStatus, unknownMsg := readError(map[string]string{"username": "nobody", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassStatus)
	assert.Equal(t, unknownStatus, wrongPassStatus)
	assert.Equal(t, unknownMsg, wrongPassMsg)
}

func TestLogin_TokenClaims(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&models.User{ID: 42, Username: "alice", PasswordHash: string(hash), Role: models.RoleUser}, nil)
	app, _ := newAuthTestApp(repo)

	resp := postJSON(t, app, "/auth/login", map[string]string{
		"username": "alice",
		"password": "hunter22",
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)

	parsed, err := jwt.Parse(out.Token, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, models.RoleUser, claims["role"])
	assert.Equal(t, tokenIssuer, claims["iss"])
	assert.Equal(t, tokenAudience, claims["aud"])
	assert.NotEmpty(t, claims["jti"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, tokenTTL, exp.Sub(iat.Time))
}
