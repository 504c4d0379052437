package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/config"
	"lingadmin/models"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
}

// newGateApp builds a Fiber app with one route behind the session and
// permission middleware, backed by a stub profile endpoint.
func newGateApp(t *testing.T, permissions []string, profileStatus int) (*fiber.App, func()) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/profile", r.URL.Path)
		if profileStatus != http.StatusOK {
			w.WriteHeader(profileStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"value":{"data":{"fullName":"Ana","roleId":{"_id":"r1","name":"Editor","permissions":%s}}}}`,
			mustJSON(t, permissions))
	}))

	reg := resources.New(backend.New(srv.URL, 0), cache.NewStore(time.Minute))

	app := fiber.New()
	app.Get("/guarded", SessionMiddleware, CheckPermissionMiddleware(reg.Auth, "course.view"), func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", AffordancesFor(SessionUser(c), "course"))
	})

	return app, srv.Close
}

func mustJSON(t *testing.T, v interface{}) string {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func guardedRequest(t *testing.T) *http.Request {
	token, err := GenerateSessionToken("user-1", "ana@example.com", "Ana", "platform-token")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestPermissionGateAllowsExactMatch(t *testing.T) {
	app, done := newGateApp(t, []string{models.PermissionProfile, "course.view", "course.edit"}, http.StatusOK)
	defer done()

	resp, err := app.Test(guardedRequest(t), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data Affordances `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Data.CanCreate)
	assert.True(t, body.Data.CanEdit)
	assert.False(t, body.Data.CanDelete)
}

func TestPermissionGateDeniesMissingPermission(t *testing.T) {
	app, done := newGateApp(t, []string{models.PermissionProfile, "course.edit"}, http.StatusOK)
	defer done()

	resp, err := app.Test(guardedRequest(t), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "course.edit does not imply course.view")
}

func TestPermissionGateDeniesWithoutBaseProfile(t *testing.T) {
	app, done := newGateApp(t, []string{"course.view"}, http.StatusOK)
	defer done()

	resp, err := app.Test(guardedRequest(t), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPermissionGateDeniesWhileProfileUnavailable(t *testing.T) {
	app, done := newGateApp(t, nil, http.StatusInternalServerError)
	defer done()

	resp, err := app.Test(guardedRequest(t), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "failed profile fetch never grants access")
}

func TestPermissionGateRequiresSession(t *testing.T) {
	app, done := newGateApp(t, []string{models.PermissionProfile, "course.view"}, http.StatusOK)
	defer done()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAffordancesForNilUser(t *testing.T) {
	assert.Equal(t, Affordances{}, AffordancesFor(nil, "course"))
}
