package contentRoutes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lingadmin/backend"
	"lingadmin/cache"
	"lingadmin/config"
	"lingadmin/middleware"
	"lingadmin/resources"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
}

// newConsole wires the content routes against a stub platform API that records
// question writes.
func newConsole(t *testing.T) (*fiber.App, *int32, func()) {
	var questionWrites int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/auth/profile":
			io.WriteString(w, `{"value":{"data":{"fullName":"Ana","roleId":{"_id":"r1","name":"Editor","permissions":["profile","question.view","question.create","question.edit"]}}}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/questions":
			atomic.AddInt32(&questionWrites, 1)
			body, _ := io.ReadAll(r.Body)
			assert.NotContains(t, string(body), "leftText", "foreign variant fields must not reach the platform")
			io.WriteString(w, `{"value":{"_id":"q1","lessonId":"l1","typeQuestion":"multiple_choice"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/questions/q1":
			io.WriteString(w, `{"value":{"_id":"q1","lessonId":"l1","typeQuestion":"multiple_choice"}}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	reg := resources.New(backend.New(srv.URL, 0), cache.NewStore(time.Minute))

	app := fiber.New()
	SetupContentRoutes(app, reg)

	return app, &questionWrites, srv.Close
}

func consoleRequest(t *testing.T, method, target, body string) *http.Request {
	token, err := middleware.GenerateSessionToken("user-1", "ana@example.com", "Ana", "platform-token")
	require.NoError(t, err)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestCreateQuestionHappyPath(t *testing.T) {
	app, writes, done := newConsole(t)
	defer done()

	body := `{"lessonId":"l1","typeQuestion":"multiple_choice","title":"Pick one","correctAnswer":"der","answers":["der","die"],"leftText":[{"value":"stale"}]}`
	resp, err := app.Test(consoleRequest(t, http.MethodPost, "/admin/questions/", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(writes))
}

func TestCreateQuestionValidationStopsBeforeBackend(t *testing.T) {
	app, writes, done := newConsole(t)
	defer done()

	// one answer option is not enough for multiple choice
	body := `{"lessonId":"l1","typeQuestion":"multiple_choice","title":"Pick one","correctAnswer":"der","answers":["der"]}`
	resp, err := app.Test(consoleRequest(t, http.MethodPost, "/admin/questions/", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var payload struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Contains(t, payload.Data, "answers")
	assert.Equal(t, int32(0), atomic.LoadInt32(writes), "invalid input never reaches the platform")
}

func TestUpdateQuestionRejectsTypeChange(t *testing.T) {
	app, writes, done := newConsole(t)
	defer done()

	// q1 is stored as multiple_choice; trying to resubmit it as gap must fail
	body := `{"lessonId":"l1","typeQuestion":"gap","correctAnswer":"estoy"}`
	resp, err := app.Test(consoleRequest(t, http.MethodPut, "/admin/questions/q1", body), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(writes))
}
