package repository

import (
	"bud35/internal/domain/entity"

	"gorm.io/gorm"
)

const DefaultAuditLimit = 50

type DefaultAuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *DefaultAuditRepository {
	return &DefaultAuditRepository{db: db}
}

func (a *DefaultAuditRepository) Save(entry *entity.AuditLog) error {
	return a.db.Create(entry).Error
}

// FindRecent returns entries newest-first, truncated to limit
// (DefaultAuditLimit when limit <= 0). Entries are append-only; there is
// no update or delete.
func (a *DefaultAuditRepository) FindRecent(limit int) ([]*entity.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}

	var entries []*entity.AuditLog
	err := a.db.Order("created_at DESC, id DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
