package repository

import (
	"errors"

	"bud35/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *DefaultSequenceRepository {
	return &DefaultSequenceRepository{db: db}
}

// Next atomically increments and returns the counter for the given
// namespace. The increment runs inside a transaction, so concurrent
// allocations are serialized and can never hand out the same number —
// the original read-max-then-write scan allowed exactly that race.
func (s *DefaultSequenceRepository) Next(name string) (int64, error) {
	var next int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"INSERT INTO sequences (name, value) VALUES (?, 0) ON CONFLICT(name) DO NOTHING",
			name,
		).Error
		if err != nil {
			return err
		}

		if err := tx.Exec("UPDATE sequences SET value = value + 1 WHERE name = ?", name).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT value FROM sequences WHERE name = ?", name).Scan(&next).Error
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Current returns the last issued number without consuming one.
func (s *DefaultSequenceRepository) Current(name string) (int64, error) {
	var seq entity.Sequence
	err := s.db.Where("name = ?", name).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}
