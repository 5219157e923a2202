package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/config"
	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/db/queries"
	"github.com/ASHISH26940/portfolio-api/pkg/handlers"
	"github.com/ASHISH26940/portfolio-api/pkg/server"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/uploads"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

type recordingNotifier struct {
	sent chan db.Message
}

func (n *recordingNotifier) NotifyNewMessage(_ context.Context, msg *db.Message) error {
	n.sent <- *msg
	return nil
}

type testEnv struct {
	t        *testing.T
	router   *gin.Engine
	uploads  string
	token    string
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(conn) })
	require.NoError(t, db.Migrate(ctx, conn))

	q := queries.New(conn)
	auth := services.NewAuthService(q, services.NewTokenService("test-secret", time.Hour))
	require.NoError(t, auth.EnsureDefaultAdmin(ctx, "admin", "admin123"))

	images, err := uploads.NewImageStore(filepath.Join(t.TempDir(), "uploads"), 1<<20)
	require.NoError(t, err)

	cfg := &config.Config{
		Environment: config.EnvDevelopment,
		UploadDir:   images.Dir(),
		CORSOrigins: []string{"http://localhost:3000"},
	}
	notifier := &recordingNotifier{sent: make(chan db.Message, 10)}
	h := handlers.NewHandler(q, auth, images, notifier, services.NewContentCache(time.Minute))

	env := &testEnv{
		t:        t,
		router:   server.NewRouter(cfg, h, auth),
		uploads:  images.Dir(),
		notifier: notifier,
	}

	w, body := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "admin123"}, false)
	require.Equal(t, http.StatusOK, w.Code)
	var login services.LoginResult
	require.NoError(t, json.Unmarshal(body.Data, &login))
	env.token = login.Token
	return env
}

func (e *testEnv) do(req *http.Request, withToken bool) (*httptest.ResponseRecorder, envelope) {
	e.t.Helper()
	if withToken {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var body envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	}
	return w, body
}

func (e *testEnv) doJSON(method, target string, payload any, withToken bool) (*httptest.ResponseRecorder, envelope) {
	e.t.Helper()
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return e.do(req, withToken)
}

type formFile struct {
	field   string
	name    string
	content []byte
}

func (e *testEnv) doMultipart(method, target string, fields map[string][]string, files ...formFile) (*httptest.ResponseRecorder, envelope) {
	e.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(e.t, mw.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(e.t, err)
		_, err = part.Write(f.content)
		require.NoError(e.t, err)
	}
	require.NoError(e.t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return e.do(req, true)
}

func (e *testEnv) uploadExists(url string) bool {
	_, err := os.Stat(filepath.Join(e.uploads, path.Base(url)))
	return err == nil
}

func (e *testEnv) uploadCount() int {
	entries, err := os.ReadDir(e.uploads)
	require.NoError(e.t, err)
	return len(entries)
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealthAndWelcome(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.doJSON(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w, _ = env.doJSON(http.MethodGet, "/", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSecurityHeaders(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.doJSON(http.MethodGet, "/api/projects", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "cross-origin", w.Header().Get("Cross-Origin-Resource-Policy"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func TestLoginFailuresLookTheSame(t *testing.T) {
	env := newTestEnv(t)

	wrongPassword, _ := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"}, false)
	unknownUser, _ := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"username": "ghost", "password": "admin123"}, false)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())

	missing, body := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"}, false)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Equal(t, "password is required", body.Message)
}

func TestVerifyAndProtectedRoutes(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodGet, "/api/auth/verify", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[map[string]any](t, body.Data)
	assert.Equal(t, "admin", user["username"])

	protected := []struct{ method, target string }{
		{http.MethodGet, "/api/auth/verify"},
		{http.MethodGet, "/api/messages"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/about"},
		{http.MethodDelete, "/api/skills/1"},
		{http.MethodDelete, "/api/projects/1/images/0"},
	}
	for _, p := range protected {
		w, body := env.doJSON(p.method, p.target, map[string]string{}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, p.target)
		assert.False(t, body.Success)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w, _ = env.do(req, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAboutGetIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	_, first := env.doJSON(http.MethodGet, "/api/about", nil, false)
	_, second := env.doJSON(http.MethodGet, "/api/about", nil, false)
	assert.JSONEq(t, string(first.Data), string(second.Data))

	about := decode[handlers.AboutResponse](t, first.Data)
	assert.Equal(t, int64(db.SingletonID), about.ID)
	assert.Equal(t, "Not specified", about.FullName)
	assert.Equal(t, about.Content, about.Bio)
	assert.Len(t, about.Skills, 4)
}

func TestUpdateAboutMultipart(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doMultipart(http.MethodPut, "/api/about", map[string][]string{
		"fullName":    {"Jane Doe"},
		"specialties": {"Go, React , "},
		"skills":      {`[{"name":"Go","level":95}]`},
	}, formFile{"photo", "me.png", pngBytes})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	about := decode[handlers.AboutResponse](t, body.Data)
	assert.Equal(t, "Jane Doe", about.FullName)
	assert.Equal(t, "Fullstack Developer", about.Title)
	assert.Equal(t, db.StringList{"Go", "React"}, about.Specialties)
	assert.Equal(t, db.SkillLevels{{Name: "Go", Level: 95}}, about.Skills)
	assert.True(t, strings.HasPrefix(about.PhotoURL, "/uploads/photo-"))
	assert.True(t, env.uploadExists(about.PhotoURL))

	w, _ = env.doJSON(http.MethodGet, about.PhotoURL, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAboutJSONAndValidation(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodPut, "/api/about", map[string]any{
		"specialties": []string{"APIs", "Cloud"},
		"bio":         "Hello there",
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	about := decode[handlers.AboutResponse](t, body.Data)
	assert.Equal(t, db.StringList{"APIs", "Cloud"}, about.Specialties)
	assert.Equal(t, "Hello there", about.Content)
	assert.Equal(t, "Not specified", about.FullName)

	w, _ = env.doJSON(http.MethodPut, "/api/about", map[string]any{
		"skills": []map[string]any{{"name": "Go", "level": 150}},
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = env.doMultipart(http.MethodPut, "/api/about", nil, formFile{"photo", "cv.pdf", []byte("%PDF-1.4")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.uploadCount())
}

func TestContactInfoPartialUpdate(t *testing.T) {
	env := newTestEnv(t)

	_, before := env.doJSON(http.MethodGet, "/api/contact-info", nil, false)

	w, after := env.doJSON(http.MethodPut, "/api/contact-info", map[string]any{}, true)
	require.Equal(t, http.StatusOK, w.Code)
	b := decode[map[string]any](t, before.Data)
	a := decode[map[string]any](t, after.Data)
	delete(b, "updatedAt")
	delete(a, "updatedAt")
	assert.Equal(t, b, a)

	w, body := env.doJSON(http.MethodPut, "/api/contact-info", map[string]string{"twitter": "https://twitter.com/jane"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[db.ContactInfo](t, body.Data)
	assert.Equal(t, "https://twitter.com/jane", info.Twitter)
	assert.Equal(t, "contact@example.com", info.Email)

	w, _ = env.doJSON(http.MethodPut, "/api/contact-info", map[string]string{"email": "not-an-email"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntroUpdate(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodPut, "/api/intro", map[string]string{"button_text": "See my work"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	intro := decode[db.Intro](t, body.Data)
	assert.Equal(t, "See my work", intro.ButtonText)
	assert.Equal(t, "Welcome to my Portfolio", intro.Title)
}

func TestSendAndManageMessages(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodPost, "/api/contact", map[string]string{
		"name": "A", "email": "a@b.com", "message": "hello world",
	}, false)
	require.Equal(t, http.StatusCreated, w.Code)
	msg := decode[db.Message](t, body.Data)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.SentAt.IsZero())

	select {
	case sent := <-env.notifier.sent:
		assert.Equal(t, msg.ID, sent.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not sent")
	}

	w, _ = env.doJSON(http.MethodPost, "/api/contact", map[string]string{"name": "A", "email": "nope", "message": "hi"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = env.doJSON(http.MethodGet, "/api/messages", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]db.Message](t, body.Data), 1)

	target := fmt.Sprintf("/api/messages/%d", msg.ID)
	w, _ = env.doJSON(http.MethodDelete, target, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = env.doJSON(http.MethodDelete, target, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendMessageStoresFieldsAsSubmitted(t *testing.T) {
	env := newTestEnv(t)

	submitted := map[string]string{
		"name": "  Jane  ", "email": "Jane@Example.COM", "message": "Line one\nLine two",
	}
	w, body := env.doJSON(http.MethodPost, "/api/contact", submitted, false)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[db.Message](t, body.Data)

	w, body = env.doJSON(http.MethodGet, "/api/messages", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decode[[]db.Message](t, body.Data)
	require.Len(t, messages, 1)

	stored := messages[0]
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, submitted["name"], stored.Name)
	assert.Equal(t, submitted["email"], stored.Email)
	assert.Equal(t, submitted["message"], stored.Message)
}

func TestExperienceLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodPost, "/api/experiences", map[string]any{
		"title": "Lead", "company": "Globex", "startDate": "2022-03-01", "endDate": "2023-01-01", "current": true,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, body.Data)
	assert.Nil(t, created["endDate"])
	id := int64(created["id"].(float64))
	target := fmt.Sprintf("/api/experiences/%d", id)

	w, body = env.doJSON(http.MethodPut, target, map[string]any{}, true)
	require.Equal(t, http.StatusOK, w.Code)
	unchanged := decode[map[string]any](t, body.Data)
	assert.Equal(t, created["title"], unchanged["title"])
	assert.Equal(t, created["startDate"], unchanged["startDate"])
	assert.Equal(t, true, unchanged["current"])

	w, body = env.doJSON(http.MethodPut, target, map[string]any{"current": false, "endDate": "2024-06-30"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	ended := decode[db.Experience](t, body.Data)
	require.NotNil(t, ended.EndDate)
	assert.Equal(t, "2024-06-30", ended.EndDate.Format("2006-01-02"))

	w, body = env.doJSON(http.MethodPut, target, map[string]any{"endDate": nil}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[db.Experience](t, body.Data).EndDate)

	w, _ = env.doJSON(http.MethodPost, "/api/experiences", map[string]any{"title": "X", "company": "Y"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = env.doJSON(http.MethodPost, "/api/experiences", map[string]any{"title": "X", "company": "Y", "startDate": "yesterday"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = env.doJSON(http.MethodGet, "/api/experiences", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]db.Experience](t, body.Data), 1)

	w, _ = env.doJSON(http.MethodDelete, target, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = env.doJSON(http.MethodGet, target, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillsDefaultsCategoriesAndCache(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodGet, "/api/skills/categories", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(body.Data))

	w, body = env.doJSON(http.MethodPost, "/api/skills", map[string]any{"name": "React", "category": "Frontend"}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	react := decode[db.Skill](t, body.Data)
	assert.Equal(t, db.DefaultSkillLevel, react.Level)
	assert.Equal(t, db.DefaultSkillOrder, react.Order)

	w, _ = env.doJSON(http.MethodPost, "/api/skills", map[string]any{"name": "Go", "category": "Backend", "level": 90}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w, body = env.doJSON(http.MethodGet, "/api/skills/categories", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Backend","Frontend"]`, string(body.Data))

	w, _ = env.doJSON(http.MethodPost, "/api/skills", map[string]any{"name": "Rust", "category": "Backend", "level": 101}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = env.doJSON(http.MethodPost, "/api/skills", map[string]any{"name": "Rust"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	target := fmt.Sprintf("/api/skills/%d", react.ID)
	w, body = env.doJSON(http.MethodPut, target, map[string]any{"level": 60}, true)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[db.Skill](t, body.Data)
	assert.Equal(t, 60, updated.Level)
	assert.Equal(t, "Frontend", updated.Category)

	w, body = env.doJSON(http.MethodGet, "/api/skills", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	skills := decode[[]db.Skill](t, body.Data)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, 60, skills[1].Level)

	w, _ = env.doJSON(http.MethodGet, "/api/skills/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = env.doJSON(http.MethodGet, "/api/skills/999", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectLifecycleWithImages(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doMultipart(http.MethodPost, "/api/projects", map[string][]string{
		"title":          {"Portfolio"},
		"description":    {"My personal portfolio website"},
		"technologies[]": {"Go", "React"},
		"github_link":    {"https://github.com/jane/portfolio"},
	}, formFile{"images", "one.png", pngBytes}, formFile{"images", "two.png", pngBytes})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	project := decode[db.Project](t, body.Data)
	assert.Equal(t, db.StringList{"Go", "React"}, project.Technologies)
	require.Len(t, project.ImageURLs, 2)
	first, second := project.ImageURLs[0], project.ImageURLs[1]
	assert.True(t, env.uploadExists(first))
	assert.True(t, env.uploadExists(second))

	target := fmt.Sprintf("/api/projects/%d", project.ID)

	w, body = env.doMultipart(http.MethodPut, target, map[string][]string{
		"existingImages[]": {first},
	}, formFile{"images", "three.png", pngBytes})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[db.Project](t, body.Data)
	require.Len(t, updated.ImageURLs, 2)
	assert.Equal(t, first, updated.ImageURLs[0])
	third := updated.ImageURLs[1]
	assert.False(t, env.uploadExists(second))
	assert.True(t, env.uploadExists(third))
	assert.Equal(t, "Portfolio", updated.Title)
	assert.Equal(t, db.StringList{"Go", "React"}, updated.Technologies)

	w, _ = env.doJSON(http.MethodDelete, target+"/images/5", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = env.doJSON(http.MethodDelete, target+"/images/abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = env.doJSON(http.MethodDelete, target+"/images/0", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, db.StringList{third}, decode[db.Project](t, body.Data).ImageURLs)
	assert.False(t, env.uploadExists(first))

	w, _ = env.doJSON(http.MethodDelete, target, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.uploadExists(third))
	assert.Zero(t, env.uploadCount())

	w, _ = env.doJSON(http.MethodGet, target, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = env.doJSON(http.MethodDelete, target, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectJSONAndPartialUpdate(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.doJSON(http.MethodPost, "/api/projects", map[string]any{
		"title":        "CLI tool",
		"description":  "A command line tool for things",
		"technologies": []string{"Go"},
		"live_link":    "https://example.com",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[db.Project](t, body.Data)
	assert.Equal(t, db.StringList{}, created.ImageURLs)

	w, body = env.doJSON(http.MethodGet, "/api/projects", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]db.Project](t, body.Data), 1)

	target := fmt.Sprintf("/api/projects/%d", created.ID)
	w, body = env.doJSON(http.MethodPut, target, map[string]any{}, true)
	require.Equal(t, http.StatusOK, w.Code)
	same := decode[db.Project](t, body.Data)
	assert.Equal(t, created.Title, same.Title)
	assert.Equal(t, created.Description, same.Description)
	assert.Equal(t, created.Technologies, same.Technologies)
	assert.Equal(t, created.LiveLink, same.LiveLink)

	w, body = env.doJSON(http.MethodPut, target, map[string]any{"live_link": ""}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[db.Project](t, body.Data).LiveLink)

	w, body = env.doJSON(http.MethodGet, "/api/projects", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]db.Project](t, body.Data)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].LiveLink, "list must not serve a stale cached copy")
}

func TestProjectValidationWritesNoFiles(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		fields map[string][]string
		files  []formFile
	}{
		{"short title", map[string][]string{
			"title": {"ab"}, "description": {"Long enough description"}, "technologies": {`["Go"]`},
		}, []formFile{{"images", "a.png", pngBytes}}},
		{"no technologies", map[string][]string{
			"title": {"Valid title"}, "description": {"Long enough description"},
		}, []formFile{{"images", "a.png", pngBytes}}},
		{"bad link", map[string][]string{
			"title": {"Valid title"}, "description": {"Long enough description"}, "technologies": {"Go"}, "github_link": {"not a url"},
		}, nil},
		{"bad image", map[string][]string{
			"title": {"Valid title"}, "description": {"Long enough description"}, "technologies": {"Go"},
		}, []formFile{{"images", "a.png", pngBytes}, {"images", "b.gif", []byte("GIF? no")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := env.doMultipart(http.MethodPost, "/api/projects", tt.fields, tt.files...)
			assert.Equal(t, http.StatusBadRequest, w.Code, body.Message)
			assert.False(t, body.Success)
			assert.Zero(t, env.uploadCount())
		})
	}

	files := make([]formFile, 11)
	for i := range files {
		files[i] = formFile{"images", fmt.Sprintf("%d.png", i), pngBytes}
	}
	w, _ := env.doMultipart(http.MethodPost, "/api/projects", map[string][]string{
		"title": {"Valid title"}, "description": {"Long enough description"}, "technologies": {"Go"},
	}, files...)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.uploadCount())
}
