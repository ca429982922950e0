package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"docvault/internal/model"
	"docvault/internal/repository"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrQuestionEmpty    = errors.New("question is empty")
)

// HistoryCache is a read-through cache of per-(user, document) QnA history.
// A nil cache disables caching, never correctness.
type HistoryCache interface {
	GetHistory(ctx context.Context, userID, documentID uint) ([]model.QnARecord, bool, error)
	SetHistory(ctx context.Context, userID, documentID uint, records []model.QnARecord) error
	DeleteHistory(ctx context.Context, userID, documentID uint) error
	MarkDirty(ctx context.Context, userID, documentID uint) error
	IsDirty(ctx context.Context, userID, documentID uint) (bool, error)
}

type QnAService struct {
	qnaRepo      *repository.QnARepository
	docRepo      *repository.DocumentRepository
	historyCache HistoryCache
	publisher    AuditPublisher
}

type AskInput struct {
	UserID     uint
	DocumentID uint
	Question   string
}

func NewQnAService(
	qnaRepo *repository.QnARepository,
	docRepo *repository.DocumentRepository,
	historyCache HistoryCache,
	publisher AuditPublisher,
) *QnAService {
	return &QnAService{
		qnaRepo:      qnaRepo,
		docRepo:      docRepo,
		historyCache: historyCache,
		publisher:    publisher,
	}
}

// Ask appends a question/answer exchange to the document's log. The document
// lookup is scoped by the asking user, so a missing document and someone
// else's document both come back as ErrDocumentNotFound.
func (s *QnAService) Ask(ctx context.Context, input AskInput) (*model.QnARecord, error) {
	if input.UserID == 0 || input.DocumentID == 0 {
		return nil, ErrInvalidInput
	}
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, ErrQuestionEmpty
	}

	doc, err := s.docRepo.GetByIDAndOwnerID(input.DocumentID, input.UserID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	record := &model.QnARecord{
		UserID:     input.UserID,
		DocumentID: input.DocumentID,
		Question:   question,
		Answer:     placeholderAnswer(question, doc.Filename),
	}
	if err := s.qnaRepo.Create(record); err != nil {
		return nil, err
	}

	if s.historyCache != nil {
		_ = s.historyCache.MarkDirty(ctx, input.UserID, input.DocumentID)
		_ = s.historyCache.DeleteHistory(ctx, input.UserID, input.DocumentID)
	}

	if s.publisher != nil {
		entry := model.AuditEntry{
			Action:     model.AuditQuestionAsked,
			UserID:     input.UserID,
			DocumentID: input.DocumentID,
			Detail:     question,
			CreatedAt:  time.Now(),
		}
		if err := s.publisher.Publish(ctx, entry); err != nil {
			log.Printf("publish audit entry failed: %v", err)
		}
	}

	return record, nil
}

// History lists every exchange for the (user, document) pair, oldest first.
func (s *QnAService) History(ctx context.Context, userID, documentID uint) ([]model.QnARecord, error) {
	if userID == 0 || documentID == 0 {
		return nil, ErrInvalidInput
	}

	doc, err := s.docRepo.GetByIDAndOwnerID(documentID, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	if s.historyCache != nil {
		dirty, err := s.historyCache.IsDirty(ctx, userID, documentID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.historyCache.GetHistory(ctx, userID, documentID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	records, err := s.qnaRepo.ListByUserAndDocument(userID, documentID)
	if err != nil {
		return nil, err
	}
	if s.historyCache != nil {
		if dirty, dirtyErr := s.historyCache.IsDirty(ctx, userID, documentID); dirtyErr == nil && !dirty {
			_ = s.historyCache.SetHistory(ctx, userID, documentID, records)
		}
	}
	return records, nil
}

// placeholderAnswer is a stand-in for a real answering engine: deterministic
// text built from the question and the document's filename.
func placeholderAnswer(question, filename string) string {
	return fmt.Sprintf("Recorded question %q about %q. Automated answering is not available yet.", question, filename)
}
