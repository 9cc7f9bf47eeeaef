package repository

import (
	"errors"

	"bud35/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *DefaultPersonRepository {
	return &DefaultPersonRepository{db: db}
}

// FindAll returns every person, most recently created first.
func (p *DefaultPersonRepository) FindAll() ([]*entity.Person, error) {
	var persons []*entity.Person
	err := p.db.Order("created_at DESC, id DESC").Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (p *DefaultPersonRepository) FindByID(id string) (*entity.Person, error) {
	var person entity.Person
	err := p.db.Where("id = ?", id).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (p *DefaultPersonRepository) FindByCAD(cad string) (*entity.Person, error) {
	var person entity.Person
	err := p.db.Where("cad = ?", cad).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &person, nil
}

// Filter returns persons matching every supplied column by strict equality,
// preserving the newest-first order of FindAll. Free-text search is a
// caller concern over the full list.
func (p *DefaultPersonRepository) Filter(criteria map[string]any) ([]*entity.Person, error) {
	var persons []*entity.Person
	err := p.db.Where(criteria).Order("created_at DESC, id DESC").Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (p *DefaultPersonRepository) Save(person *entity.Person) error {
	return p.db.Save(person).Error
}

// Persons are never deleted; no Delete on purpose.
