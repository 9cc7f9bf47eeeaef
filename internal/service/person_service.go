package service

import (
	"fmt"

	"bud35/internal/contract"
	"bud35/internal/domain/entity"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"
	"bud35/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PersonRepository interface {
	FindAll() ([]*entity.Person, error)
	FindByID(id string) (*entity.Person, error)
	FindByCAD(cad string) (*entity.Person, error)
	Filter(criteria map[string]any) ([]*entity.Person, error)
	Save(person *entity.Person) error
}

type SequenceRepository interface {
	Next(name string) (int64, error)
}

type PersonService struct {
	PersonRepo PersonRepository
	Sequences  SequenceRepository
	Audit      *AuditService
	Validate   *validator.Validate
}

func NewPersonService(
	personRepo PersonRepository,
	sequences SequenceRepository,
	audit *AuditService,
	validate *validator.Validate,
) *PersonService {
	return &PersonService{
		PersonRepo: personRepo,
		Sequences:  sequences,
		Audit:      audit,
		Validate:   validate,
	}
}

// GetPersons lists all persons newest-first, or the exact-match subset when
// criteria are given. Criteria keys are column names vetted by the handler.
func (p *PersonService) GetPersons(criteria map[string]any) ([]*contract.PersonResponse, apierror.ErrorResponse) {
	var persons []*entity.Person
	var err error

	if len(criteria) == 0 {
		persons, err = p.PersonRepo.FindAll()
	} else {
		persons, err = p.PersonRepo.Filter(criteria)
	}
	if err != nil {
		log.Errorf("failed to fetch persons: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PersonResponse, len(persons))
	for i, person := range persons {
		resp[i] = toPersonResponse(person)
	}
	return resp, nil
}

// GetPerson resolves one record and logs the view action.
func (p *PersonService) GetPerson(actor *entity.User, id string) (*contract.PersonResponse, apierror.ErrorResponse) {
	person, err := p.PersonRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch person %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if person == nil {
		return nil, apierror.NotFoundError
	}

	p.Audit.Record(actor, entity.ActionView, "Person", person.ID, person.FullName,
		fmt.Sprintf("Visualizou perfil %s", person.ID))
	return toPersonResponse(person), nil
}

// CreatePerson registers a new record. The CAD business key comes from the
// atomic person_cad sequence, so concurrent registrations always receive
// distinct numbers. Status defaults to "procurado" when omitted.
func (p *PersonService) CreatePerson(actor *entity.User, req *contract.CreatePersonRequest) (*contract.PersonResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	next, err := p.Sequences.Next(entity.SequencePersonCAD)
	if err != nil {
		log.Errorf("failed to allocate person CAD: %v", err)
		return nil, apierror.InternalServerError
	}

	status := entity.PersonStatus(req.Status)
	if status == "" {
		status = entity.StatusProcurado
	}

	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	now := utils.NowUTC()
	person := &entity.Person{
		ID:       uid.NewID("p"),
		CAD:      utils.FormatCAD("CAD", next),
		FullName: req.FullName,
		Nickname: req.Nickname,
		Status:   status,

		CPF:                req.CPF,
		RG:                 req.RG,
		BirthDate:          req.BirthDate,
		MotherName:         req.MotherName,
		FatherName:         req.FatherName,
		Sex:                req.Sex,
		SkinColor:          req.SkinColor,
		Height:             req.Height,
		Hair:               req.Hair,
		RegistrationNumber: req.RegistrationNumber,
		NaturalCity:        req.NaturalCity,
		NaturalState:       req.NaturalState,

		DangerLevel:      entity.DangerLevel(req.DangerLevel),
		Faccionado:       req.Faccionado,
		CriminalArticles: req.CriminalArticles,
		Observations:     req.Observations,

		Street:            req.Street,
		Number:            req.Number,
		Neighborhood:      req.Neighborhood,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		LastKnownLocation: req.LastKnownLocation,

		Photos:     photos,
		Documents:  req.Documents,
		Associates: req.Associates,

		LastEditedBy:    actor.Email,
		LastEditedByCAD: actor.CAD,
		CreatedAt:       now,
	}

	if err := p.PersonRepo.Save(person); err != nil {
		log.Errorf("failed to create person: %v", err)
		return nil, apierror.InternalServerError
	}

	p.Audit.Record(actor, entity.ActionCreate, "Person", person.ID, person.FullName,
		fmt.Sprintf("Cadastro criado: %s", person.FullName))
	return toPersonResponse(person), nil
}

// UpdatePerson merges the supplied fields over the stored record. ID, CAD
// and CreatedAt never change; UpdatedAt and the editor fields are stamped
// from the acting user.
func (p *PersonService) UpdatePerson(actor *entity.User, id string, req *contract.UpdatePersonRequest) (*contract.PersonResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	person, err := p.PersonRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch person %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if person == nil {
		return nil, apierror.NotFoundError
	}

	mergePerson(person, req)
	person.UpdatedAt = utils.NowUTC()
	person.LastEditedBy = actor.Email
	person.LastEditedByCAD = actor.CAD

	if err := p.PersonRepo.Save(person); err != nil {
		log.Errorf("failed to update person %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	p.Audit.Record(actor, entity.ActionUpdate, "Person", person.ID, person.FullName,
		fmt.Sprintf("Cadastro atualizado: %s", person.FullName))
	return toPersonResponse(person), nil
}

func mergePerson(person *entity.Person, req *contract.UpdatePersonRequest) {
	if req.FullName != nil {
		person.FullName = *req.FullName
	}
	if req.Nickname != nil {
		person.Nickname = *req.Nickname
	}
	if req.Status != nil {
		person.Status = entity.PersonStatus(*req.Status)
	}

	if req.CPF != nil {
		person.CPF = *req.CPF
	}
	if req.RG != nil {
		person.RG = *req.RG
	}
	if req.BirthDate != nil {
		person.BirthDate = *req.BirthDate
	}
	if req.MotherName != nil {
		person.MotherName = *req.MotherName
	}
	if req.FatherName != nil {
		person.FatherName = *req.FatherName
	}
	if req.Sex != nil {
		person.Sex = *req.Sex
	}
	if req.SkinColor != nil {
		person.SkinColor = *req.SkinColor
	}
	if req.Height != nil {
		person.Height = *req.Height
	}
	if req.Hair != nil {
		person.Hair = *req.Hair
	}
	if req.RegistrationNumber != nil {
		person.RegistrationNumber = *req.RegistrationNumber
	}
	if req.NaturalCity != nil {
		person.NaturalCity = *req.NaturalCity
	}
	if req.NaturalState != nil {
		person.NaturalState = *req.NaturalState
	}

	if req.DangerLevel != nil {
		person.DangerLevel = entity.DangerLevel(*req.DangerLevel)
	}
	if req.Faccionado != nil {
		person.Faccionado = *req.Faccionado
	}
	if req.CriminalArticles != nil {
		person.CriminalArticles = *req.CriminalArticles
	}
	if req.Observations != nil {
		person.Observations = *req.Observations
	}

	if req.Street != nil {
		person.Street = *req.Street
	}
	if req.Number != nil {
		person.Number = *req.Number
	}
	if req.Neighborhood != nil {
		person.Neighborhood = *req.Neighborhood
	}
	if req.City != nil {
		person.City = *req.City
	}
	if req.State != nil {
		person.State = *req.State
	}
	if req.ZipCode != nil {
		person.ZipCode = *req.ZipCode
	}
	if req.LastKnownLocation != nil {
		person.LastKnownLocation = *req.LastKnownLocation
	}

	if req.Photos != nil {
		person.Photos = req.Photos
	}
	if req.Documents != nil {
		person.Documents = req.Documents
	}
	if req.Associates != nil {
		person.Associates = req.Associates
	}
}

func toPersonResponse(person *entity.Person) *contract.PersonResponse {
	resp := &contract.PersonResponse{
		ID:       person.ID,
		CAD:      person.CAD,
		FullName: person.FullName,
		Nickname: person.Nickname,
		Status:   string(person.Status),

		CPF:                person.CPF,
		RG:                 person.RG,
		BirthDate:          person.BirthDate,
		MotherName:         person.MotherName,
		FatherName:         person.FatherName,
		Sex:                person.Sex,
		SkinColor:          person.SkinColor,
		Height:             person.Height,
		Hair:               person.Hair,
		RegistrationNumber: person.RegistrationNumber,
		NaturalCity:        person.NaturalCity,
		NaturalState:       person.NaturalState,

		DangerLevel:      string(person.DangerLevel),
		Faccionado:       person.Faccionado,
		CriminalArticles: person.CriminalArticles,
		Observations:     person.Observations,

		Street:            person.Street,
		Number:            person.Number,
		Neighborhood:      person.Neighborhood,
		City:              person.City,
		State:             person.State,
		ZipCode:           person.ZipCode,
		LastKnownLocation: person.LastKnownLocation,

		Photos:     person.Photos,
		Documents:  person.Documents,
		Associates: person.Associates,

		LastEditedBy:    person.LastEditedBy,
		LastEditedByCAD: person.LastEditedByCAD,
		CreatedAt:       utils.FormatEpoch(person.CreatedAt),
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}
	if person.UpdatedAt > 0 {
		resp.UpdatedAt = utils.FormatEpoch(person.UpdatedAt)
	}
	return resp
}
