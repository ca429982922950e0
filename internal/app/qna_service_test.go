package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/model"
	"docvault/internal/repository"
)

func newQnAFixture(t *testing.T) (*QnAService, *repository.DocumentRepository, *capturingPublisher) {
	t.Helper()

	db := newTestDB(t)
	docRepo := repository.NewDocumentRepository(db)
	pub := &capturingPublisher{}
	svc := NewQnAService(repository.NewQnARepository(db), docRepo, nil, pub)
	return svc, docRepo, pub
}

func seedDocument(t *testing.T, docRepo *repository.DocumentRepository, ownerID uint, filename string) *model.Document {
	t.Helper()
	doc := &model.Document{OwnerID: ownerID, Filename: filename, Content: "seed", StorageKey: "seed"}
	require.NoError(t, docRepo.Create(doc))
	return doc
}

func TestAskAppendsRecord(t *testing.T) {
	svc, docRepo, pub := newQnAFixture(t)
	doc := seedDocument(t, docRepo, 1, "notes.txt")

	record, err := svc.Ask(context.Background(), AskInput{UserID: 1, DocumentID: doc.ID, Question: "What is this?"})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "What is this?", record.Question)
	assert.NotEmpty(t, record.Answer)
	assert.Equal(t, uint(1), record.UserID)
	assert.Equal(t, doc.ID, record.DocumentID)

	require.Len(t, pub.entries, 1)
	assert.Equal(t, model.AuditQuestionAsked, pub.entries[0].Action)
}

func TestAskPlaceholderAnswerIsDeterministic(t *testing.T) {
	svc, docRepo, _ := newQnAFixture(t)
	doc := seedDocument(t, docRepo, 1, "notes.txt")

	first, err := svc.Ask(context.Background(), AskInput{UserID: 1, DocumentID: doc.ID, Question: "Q"})
	require.NoError(t, err)
	second, err := svc.Ask(context.Background(), AskInput{UserID: 1, DocumentID: doc.ID, Question: "Q"})
	require.NoError(t, err)

	assert.Equal(t, first.Answer, second.Answer)
}

func TestAskSomeoneElsesDocumentIsNotFound(t *testing.T) {
	svc, docRepo, _ := newQnAFixture(t)
	doc := seedDocument(t, docRepo, 1, "notes.txt")

	// The document exists, but user 2 must not learn that.
	_, err := svc.Ask(context.Background(), AskInput{UserID: 2, DocumentID: doc.ID, Question: "Q"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = svc.Ask(context.Background(), AskInput{UserID: 2, DocumentID: doc.ID + 100, Question: "Q"})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestAskEmptyQuestion(t *testing.T) {
	svc, docRepo, _ := newQnAFixture(t)
	doc := seedDocument(t, docRepo, 1, "notes.txt")

	_, err := svc.Ask(context.Background(), AskInput{UserID: 1, DocumentID: doc.ID, Question: "   "})
	assert.ErrorIs(t, err, ErrQuestionEmpty)
}

func TestHistoryReturnsExactlyTheAskedQuestions(t *testing.T) {
	svc, docRepo, _ := newQnAFixture(t)
	doc := seedDocument(t, docRepo, 1, "notes.txt")
	other := seedDocument(t, docRepo, 2, "other.txt")

	ctx := context.Background()
	_, err := svc.Ask(ctx, AskInput{UserID: 1, DocumentID: doc.ID, Question: "Q1"})
	require.NoError(t, err)
	_, err = svc.Ask(ctx, AskInput{UserID: 1, DocumentID: doc.ID, Question: "Q2"})
	require.NoError(t, err)
	_, err = svc.Ask(ctx, AskInput{UserID: 2, DocumentID: other.ID, Question: "Q3"})
	require.NoError(t, err)

	records, err := svc.History(ctx, 1, doc.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	questions := map[string]bool{}
	for _, r := range records {
		questions[r.Question] = true
	}
	assert.Equal(t, map[string]bool{"Q1": true, "Q2": true}, questions)
}

func TestHistoryGuardsOwnership(t *testing.T) {
	svc, docRepo, _ := newQnAFixture(t)
	doc := seedDocument(t, docRepo, 1, "notes.txt")

	_, err := svc.History(context.Background(), 2, doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
