package contact

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Status lifecycle: records are written as "new" only; read/responded
// transitions happen outside this system.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusResponded = "responded"
)

type Message struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(16);not null;default:new" json:"status"`
	IPAddress string    `gorm:"type:varchar(64)" json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string { return "contact_messages" }

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Insert(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}
