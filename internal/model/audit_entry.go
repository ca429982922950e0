package model

import "time"

// AuditEntry records a completed action (document ingested, question asked).
// It doubles as the queue payload for the async audit worker.
type AuditEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Action     string    `gorm:"size:32;not null;index" json:"action"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	DocumentID uint      `gorm:"index" json:"document_id"`
	Detail     string    `gorm:"size:255" json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	AuditDocumentIngested = "document.ingested"
	AuditQuestionAsked    = "qna.asked"
)
