package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"taskeasy/internal/adapters/persistence/models"
	"taskeasy/internal/adapters/persistence/repositories"
	"taskeasy/internal/config"
	"taskeasy/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode:      "dev",
		Port:         "3000",
		StoreBackend: config.StoreMemory,
		JWT: config.JWTConfig{
			Secret:        "routes-test-secret",
			Header:        "Authorization",
			TokenLifetime: 5 * time.Hour,
			RefreshGrace:  30 * time.Minute,
			LoginPath:     "/authenticate",
			RefreshPath:   "/refresh",
		},
	}
}

func testApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	hash, err := password.Hash("secret")
	require.NoError(t, err)

	userStore := repositories.NewMemoryUserStore([]*models.User{
		{ID: 1, Username: "alice", Password: hash, Roles: "ROLE_USER_2", IsActive: true},
	})
	todoRepo := repositories.NewMemoryTodoRepository([]*models.Todo{
		{Username: "alice", Description: "Learn Go", TargetDate: time.Now().AddDate(0, 0, 7)},
	})

	cfg := testConfig()
	app := fiber.New()
	Setup(app, userStore, todoRepo, cfg)
	return app, cfg
}

func login(t *testing.T, app *fiber.App, username, pass string) (int, string) {
	t.Helper()

	body, err := json.Marshal(fiber.Map{"username": username, "password": pass})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/authenticate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	if resp.StatusCode != fiber.StatusOK {
		return resp.StatusCode, ""
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope.Data.Token
}

func TestLoginAndProtectedAccess(t *testing.T) {
	t.Parallel()

	app, _ := testApp(t)

	status, token := login(t, app, "alice", "secret")
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, token)

	// without a token the list is rejected
	req := httptest.NewRequest("GET", "/api/v1/users/alice/todos", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// with the token it succeeds
	req = httptest.NewRequest("GET", "/api/v1/users/alice/todos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Learn Go")
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()

	app, _ := testApp(t)

	status, _ := login(t, app, "alice", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = login(t, app, "mallory", "secret")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = login(t, app, "", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRefreshFlow(t *testing.T) {
	t.Parallel()

	app, _ := testApp(t)

	status, token := login(t, app, "alice", "secret")
	require.Equal(t, fiber.StatusOK, status)

	// a live token is inside its refresh window
	req := httptest.NewRequest("GET", "/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotEmpty(t, envelope.Data.Token)

	// garbage cannot be refreshed
	req = httptest.NewRequest("GET", "/refresh", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// no token at all
	req = httptest.NewRequest("GET", "/refresh", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTodoCRUDOverHTTP(t *testing.T) {
	t.Parallel()

	app, _ := testApp(t)

	_, token := login(t, app, "alice", "secret")
	require.NotEmpty(t, token)

	do := func(method, path string, payload interface{}) (int, string) {
		t.Helper()
		var reqBody io.Reader
		if payload != nil {
			b, err := json.Marshal(payload)
			require.NoError(t, err)
			reqBody = bytes.NewReader(b)
		}
		req := httptest.NewRequest(method, path, reqBody)
		req.Header.Set("Authorization", "Bearer "+token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	// create
	status, body := do("POST", "/api/v1/users/alice/todos", fiber.Map{
		"description": "Write tests",
		"target_date": time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created struct {
		Data models.Todo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotZero(t, created.Data.ID)
	id := created.Data.ID

	// update
	status, body = do("PUT", todoPath(id), fiber.Map{
		"description": "Write tests",
		"target_date": time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
		"is_done":     true,
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"is_done":true`)

	// get
	status, _ = do("GET", todoPath(id), nil)
	require.Equal(t, fiber.StatusOK, status)

	// delete
	status, _ = do("DELETE", todoPath(id), nil)
	require.Equal(t, fiber.StatusNoContent, status)

	status, _ = do("GET", todoPath(id), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func todoPath(id uint) string {
	return "/api/v1/users/alice/todos/" + strconv.FormatUint(uint64(id), 10)
}
