package repository

import (
	"fmt"

	"gorm.io/gorm"

	"docvault/internal/model"
)

type QnARepository struct {
	db *gorm.DB
}

func NewQnARepository(db *gorm.DB) *QnARepository {
	return &QnARepository{db: db}
}

func (r *QnARepository) Create(record *model.QnARecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create qna record failed: %w", err)
	}
	return nil
}

func (r *QnARepository) ListByUserAndDocument(userID, documentID uint) ([]model.QnARecord, error) {
	var list []model.QnARecord
	err := r.db.
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list qna records failed: %w", err)
	}
	return list, nil
}
