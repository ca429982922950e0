package model

import "time"

// Document is an ingested file's extracted content. Rows are immutable after
// creation; StorageKey locates the raw bytes on disk and is never exposed.
type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OwnerID    uint      `gorm:"not null;index" json:"owner_id"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	StorageKey string    `gorm:"size:320;not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
