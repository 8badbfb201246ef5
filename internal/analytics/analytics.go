package analytics

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Record is a write-once analytics event. Data is free-form key/value,
// stored JSON-encoded. There is no update or delete path.
type Record struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"`
	Event     string    `gorm:"type:varchar(128);index;not null" json:"event"`
	Data      string    `gorm:"type:text" json:"data"`
	SessionID *string   `gorm:"type:varchar(36)" json:"session_id,omitempty"`
	UserAgent *string   `gorm:"type:varchar(512)" json:"user_agent,omitempty"`
	IPAddress *string   `gorm:"type:varchar(64)" json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

func (Record) TableName() string { return "analytics_events" }

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Insert(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
