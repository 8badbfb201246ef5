package analytics

import (
	"context"
	"encoding/json"
	"log"

	"github.com/sharan-555/portfolio-api/internal/common"
)

// Inserter is the persistence side of the tracker.
type Inserter interface {
	Insert(ctx context.Context, rec *Record) error
}

// Counter keeps best-effort per-event hit counters.
type Counter interface {
	IncrEvent(ctx context.Context, event string) error
}

// Event is one tracking call. SessionID/UserAgent/IPAddress are optional.
type Event struct {
	Name      string
	Data      map[string]any
	SessionID string
	UserAgent string
	IPAddress string
}

// Tracker writes analytics records. Tracking is best-effort: every failure
// is logged and swallowed so it never blocks the operation being tracked.
// The returned error exists only so the tracking endpoint can pick its soft
// response text.
type Tracker struct {
	store   Inserter
	counter Counter
}

func NewTracker(store Inserter, counter Counter) *Tracker {
	return &Tracker{store: store, counter: counter}
}

func (t *Tracker) Track(ctx context.Context, ev Event) error {
	id, err := common.NewULID()
	if err != nil {
		log.Printf("[Analytics] ulid failed event=%s err=%v", ev.Name, err)
		return err
	}

	data := "{}"
	if len(ev.Data) > 0 {
		b, err := json.Marshal(ev.Data)
		if err != nil {
			log.Printf("[Analytics] marshal failed event=%s err=%v", ev.Name, err)
			return err
		}
		data = string(b)
	}

	rec := &Record{
		ID:    id,
		Event: ev.Name,
		Data:  data,
	}
	if ev.SessionID != "" {
		rec.SessionID = &ev.SessionID
	}
	if ev.UserAgent != "" {
		rec.UserAgent = &ev.UserAgent
	}
	if ev.IPAddress != "" {
		rec.IPAddress = &ev.IPAddress
	}

	if err := t.store.Insert(ctx, rec); err != nil {
		log.Printf("[Analytics] insert failed event=%s err=%v", ev.Name, err)
		return err
	}

	if t.counter != nil {
		if err := t.counter.IncrEvent(ctx, ev.Name); err != nil {
			log.Printf("[Analytics] counter failed event=%s err=%v", ev.Name, err)
		}
	}
	return nil
}
