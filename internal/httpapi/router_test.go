package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/sharan-555/portfolio-api/internal/ai"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/chat"
	"github.com/sharan-555/portfolio-api/internal/config"
	"github.com/sharan-555/portfolio-api/internal/contact"
	"github.com/sharan-555/portfolio-api/internal/httpapi/handlers"
	"github.com/sharan-555/portfolio-api/internal/resume"
	"gorm.io/gorm"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	_ = messages
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&chat.Session{}, &chat.Message{}, &contact.Message{}, &analytics.Record{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB, provider ai.Provider, tracker *analytics.Tracker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if tracker == nil {
		tracker = analytics.NewTracker(analytics.NewRepo(db), nil)
	}
	h := handlers.NewHandler(
		db,
		config.Config{},
		chat.NewService(chat.NewRepo(db), provider, 6),
		contact.NewRepo(db),
		tracker,
		resume.NewGenerator(),
		nil,
	)
	return NewRouter(h, "*")
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	r := newTestRouter(t, openTestDB(t), &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var resp struct {
		Message  string   `json:"message"`
		Version  string   `json:"version"`
		Status   string   `json:"status"`
		Features []string `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Version != "1.0.0" || resp.Status != "healthy" {
		t.Fatalf("unexpected info: %+v", resp)
	}
	if len(resp.Features) != 4 {
		t.Fatalf("expected 4 features, got %v", resp.Features)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, openTestDB(t), &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["database"] != "connected" || resp["ai_service"] != "ready" {
		t.Fatalf("unexpected health body: %v", resp)
	}
	if _, ok := resp["timestamp"].(string); !ok {
		t.Fatalf("timestamp missing")
	}
}

func TestChat_ReturnsReplyAndSessionID(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db, &stubProvider{reply: "hello from the model"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"message":"hi there"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reply     string `json:"reply"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply != "hello from the model" {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
	if resp.SessionID == "" {
		t.Fatalf("session_id must be generated")
	}

	// reusing the returned session id continues the same transcript
	w2 := doJSON(t, r, http.MethodPost, "/api/chat",
		fmt.Sprintf(`{"message":"again","session_id":%q}`, resp.SessionID))
	if w2.Code != http.StatusOK {
		t.Fatalf("status %d", w2.Code)
	}
	var count int64
	if err := db.Model(&chat.Message{}).Where("session_id = ?", resp.SessionID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 persisted messages, got %d", count)
	}
}

func TestChat_ProviderFailureStillSucceeds(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db, &stubProvider{err: errors.New("api down")}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"message":"what projects has he built?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected HTTP success on provider failure, got %d", w.Code)
	}

	var resp struct {
		Reply     string `json:"reply"`
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply == "" {
		t.Fatalf("fallback reply must not be empty")
	}
	if !strings.Contains(resp.Reply, "projects") {
		t.Fatalf("expected the projects fallback, got %q", resp.Reply)
	}

	var count int64
	if err := db.Model(&chat.Message{}).Where("session_id = ?", resp.SessionID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("fallback exchange must be persisted, got %d rows", count)
	}
}

func TestChat_MissingMessageRejected(t *testing.T) {
	r := newTestRouter(t, openTestDB(t), &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"session_id":"abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestContact_InvalidEmailRejected(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db, &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jordan","email":"invalid-email","subject":"Hi","message":"Hello"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
	if _, ok := resp.Error.Fields["email"]; !ok {
		t.Fatalf("expected field-level email detail, got %v", resp.Error.Fields)
	}

	var count int64
	if err := db.Model(&contact.Message{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected submission must not be persisted")
	}
}

func TestContact_ValidSubmission(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db, &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jordan","email":"jordan@example.com","subject":"Hiring","message":"Are you available?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	var msgs []contact.Message
	if err := db.Find(&msgs).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one contact record, got %d", len(msgs))
	}
	if msgs[0].Status != contact.StatusNew {
		t.Fatalf("expected status %q, got %q", contact.StatusNew, msgs[0].Status)
	}
	if msgs[0].Email != "jordan@example.com" {
		t.Fatalf("unexpected email %q", msgs[0].Email)
	}
}

type failingInserter struct{}

func (failingInserter) Insert(ctx context.Context, rec *analytics.Record) error {
	_ = ctx
	_ = rec
	return errors.New("analytics store down")
}

func TestAnalyticsTrack_SoftFailure(t *testing.T) {
	db := openTestDB(t)
	tracker := analytics.NewTracker(failingInserter{}, nil)
	r := newTestRouter(t, db, &stubProvider{reply: "ok"}, tracker)

	w := doJSON(t, r, http.MethodPost, "/api/analytics/track", `{"event":"page_view"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("tracking failure must not surface as an error, got %d", w.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success-shaped response")
	}
	if resp.Message != "Event tracking failed but request completed" {
		t.Fatalf("unexpected soft message %q", resp.Message)
	}
}

func TestAnalyticsTrack_Success(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db, &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/analytics/track",
		`{"event":"page_view","data":{"path":"/projects"},"session_id":"s1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var count int64
	if err := db.Model(&analytics.Record{}).Where("event = ?", "page_view").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 analytics record, got %d", count)
	}
}

func TestResumeDownload(t *testing.T) {
	r := newTestRouter(t, openTestDB(t), &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/resume/download", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=Sharandeep_Reddy_Resume.pdf" {
		t.Fatalf("content disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF")
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t, openTestDB(t), &stubProvider{reply: "ok"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatalf("error shape expected")
	}
}
