package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

type failingStore struct{}

func (failingStore) Insert(ctx context.Context, rec *Record) error {
	_ = ctx
	_ = rec
	return errors.New("store unavailable")
}

type countingCounter struct {
	events []string
}

func (c *countingCounter) IncrEvent(ctx context.Context, event string) error {
	_ = ctx
	c.events = append(c.events, event)
	return nil
}

func TestTrack_WritesRecord(t *testing.T) {
	db := openTestDB(t)
	counter := &countingCounter{}
	tr := NewTracker(NewRepo(db), counter)

	err := tr.Track(context.Background(), Event{
		Name:      "resume_download",
		Data:      map[string]any{"format": "pdf"},
		SessionID: "sess-1",
		UserAgent: "curl/8.0",
		IPAddress: "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("track: %v", err)
	}

	var recs []Record
	if err := db.Find(&recs).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.ID == "" || rec.Event != "resume_download" {
		t.Fatalf("unexpected record: id=%q event=%q", rec.ID, rec.Event)
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(rec.Data), &data); err != nil {
		t.Fatalf("data not json: %v", err)
	}
	if data["format"] != "pdf" {
		t.Fatalf("unexpected data: %v", data)
	}
	if rec.SessionID == nil || *rec.SessionID != "sess-1" {
		t.Fatalf("session_id not stored")
	}
	if len(counter.events) != 1 || counter.events[0] != "resume_download" {
		t.Fatalf("counter not bumped: %v", counter.events)
	}
}

func TestTrack_OptionalFieldsStayNull(t *testing.T) {
	db := openTestDB(t)
	tr := NewTracker(NewRepo(db), nil)

	if err := tr.Track(context.Background(), Event{Name: "page_view"}); err != nil {
		t.Fatalf("track: %v", err)
	}

	var rec Record
	if err := db.First(&rec).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if rec.SessionID != nil || rec.UserAgent != nil || rec.IPAddress != nil {
		t.Fatalf("expected optional fields to be null")
	}
	if rec.Data != "{}" {
		t.Fatalf("expected empty data object, got %q", rec.Data)
	}
}

func TestTrack_StoreFailureIsReturnedNotPanicked(t *testing.T) {
	tr := NewTracker(failingStore{}, nil)
	if err := tr.Track(context.Background(), Event{Name: "x"}); err == nil {
		t.Fatalf("expected error from failing store")
	}
}
