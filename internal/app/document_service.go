package app

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"docvault/internal/model"
	"docvault/internal/pkg/pdfextract"
	"docvault/internal/repository"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidEncoding     = errors.New("invalid encoding")
)

// BlobStore persists raw upload bytes and returns the key they live under.
type BlobStore interface {
	Save(filename string, data []byte) (string, error)
}

// AuditPublisher enqueues an audit entry for asynchronous persistence.
// Publishing is best-effort; a nil publisher disables the audit trail.
type AuditPublisher interface {
	Publish(ctx context.Context, entry model.AuditEntry) error
}

type DocumentService struct {
	docRepo   *repository.DocumentRepository
	blobs     BlobStore
	publisher AuditPublisher
}

type IngestInput struct {
	OwnerID  uint
	Filename string
	Data     []byte
}

func NewDocumentService(docRepo *repository.DocumentRepository, blobs BlobStore, publisher AuditPublisher) *DocumentService {
	return &DocumentService{
		docRepo:   docRepo,
		blobs:     blobs,
		publisher: publisher,
	}
}

// Ingest validates the file type, writes the raw bytes to the blob store,
// extracts plain text and persists the document row. If extraction fails after
// the blob write the blob is left behind; there is no compensation step.
func (s *DocumentService) Ingest(ctx context.Context, input IngestInput) (*model.Document, error) {
	if input.OwnerID == 0 || input.Filename == "" {
		return nil, ErrInvalidInput
	}

	// The suffix match is case-sensitive on purpose: "report.PDF" is rejected.
	isTxt := strings.HasSuffix(input.Filename, ".txt")
	isPDF := strings.HasSuffix(input.Filename, ".pdf")
	if !isTxt && !isPDF {
		return nil, ErrUnsupportedFileType
	}

	key, err := s.blobs.Save(input.Filename, input.Data)
	if err != nil {
		return nil, err
	}

	var content string
	if isTxt {
		if !utf8.Valid(input.Data) {
			return nil, ErrInvalidEncoding
		}
		content = string(input.Data)
	} else {
		content, err = pdfextract.ExtractPages(input.Data)
		if err != nil {
			return nil, ErrInvalidEncoding
		}
	}

	doc := &model.Document{
		OwnerID:    input.OwnerID,
		Filename:   input.Filename,
		Content:    content,
		StorageKey: key,
	}
	if err := s.docRepo.Create(doc); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		entry := model.AuditEntry{
			Action:     model.AuditDocumentIngested,
			UserID:     input.OwnerID,
			DocumentID: doc.ID,
			Detail:     input.Filename,
			CreatedAt:  time.Now(),
		}
		if err := s.publisher.Publish(ctx, entry); err != nil {
			log.Printf("publish audit entry failed: %v", err)
		}
	}

	return doc, nil
}

func (s *DocumentService) ListDocuments(ownerID uint) ([]model.Document, error) {
	if ownerID == 0 {
		return nil, ErrInvalidInput
	}
	return s.docRepo.ListByOwnerID(ownerID)
}
