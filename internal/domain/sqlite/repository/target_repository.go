package repository

import (
	"errors"

	"bud35/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTargetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) *DefaultTargetRepository {
	return &DefaultTargetRepository{db: db}
}

func (t *DefaultTargetRepository) FindAll() ([]*entity.Target, error) {
	var targets []*entity.Target
	err := t.db.Order("created_date DESC, id DESC").Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func (t *DefaultTargetRepository) FindByID(id string) (*entity.Target, error) {
	var target entity.Target
	err := t.db.Where("id = ?", id).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &target, nil
}

func (t *DefaultTargetRepository) FindByPersonCAD(cad string) (*entity.Target, error) {
	var target entity.Target
	err := t.db.Where("person_cad = ?", cad).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &target, nil
}

// Save accepts duplicate person_cad entries; the at-most-one-target-per-person
// rule is enforced one layer up, where candidates are pre-filtered.
func (t *DefaultTargetRepository) Save(target *entity.Target) error {
	return t.db.Save(target).Error
}

// Delete removes the entry with the given id. Deleting an absent id is a
// no-op, not an error.
func (t *DefaultTargetRepository) Delete(id string) error {
	return t.db.Where("id = ?", id).Delete(&entity.Target{}).Error
}
