package model

import (
	"time"

	gorm "gorm.io/gorm"
)

// BaseModel carries the identity every record shares. IDs are assigned by the
// store, never reused after a delete, and records are immutable after insert,
// so there is no UpdatedAt.
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (b *BaseModel) BeforeCreate(*gorm.DB) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}
