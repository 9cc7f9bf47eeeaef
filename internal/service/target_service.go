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

type TargetRepository interface {
	FindAll() ([]*entity.Target, error)
	FindByID(id string) (*entity.Target, error)
	FindByPersonCAD(cad string) (*entity.Target, error)
	Save(target *entity.Target) error
	Delete(id string) error
}

type TargetService struct {
	TargetRepo TargetRepository
	PersonRepo PersonRepository
	Audit      *AuditService
	Validate   *validator.Validate
}

func NewTargetService(
	targetRepo TargetRepository,
	personRepo PersonRepository,
	audit *AuditService,
	validate *validator.Validate,
) *TargetService {
	return &TargetService{
		TargetRepo: targetRepo,
		PersonRepo: personRepo,
		Audit:      audit,
		Validate:   validate,
	}
}

// GetTargets lists the watchlist newest-first. Each entry carries the
// referenced person when the CAD still resolves; orphaned entries stay in
// the list with a nil person, views that need details skip them.
func (t *TargetService) GetTargets() ([]*contract.TargetResponse, apierror.ErrorResponse) {
	targets, err := t.TargetRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch targets: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TargetResponse, len(targets))
	for i, target := range targets {
		person, perr := t.PersonRepo.FindByCAD(target.PersonCAD)
		if perr != nil {
			log.Errorf("failed to resolve person %s for target %s: %v", target.PersonCAD, target.ID, perr)
		}
		resp[i] = toTargetResponse(target, person)
	}
	return resp, nil
}

// CreateTarget adds a person to the watchlist. The person must exist and
// not already be listed; the storage layer itself would accept a duplicate,
// the dedup lives here where candidates used to be pre-filtered.
func (t *TargetService) CreateTarget(actor *entity.User, req *contract.CreateTargetRequest) (*contract.TargetResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := t.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	person, err := t.PersonRepo.FindByCAD(req.PersonCAD)
	if err != nil {
		log.Errorf("failed to resolve person %s: %v", req.PersonCAD, err)
		return nil, apierror.InternalServerError
	}
	if person == nil {
		return nil, apierror.UnknownPersonCADError
	}

	existing, err := t.TargetRepo.FindByPersonCAD(req.PersonCAD)
	if err != nil {
		log.Errorf("failed to check existing target for %s: %v", req.PersonCAD, err)
		return nil, apierror.InternalServerError
	}
	if existing != nil {
		return nil, apierror.DuplicateTargetError
	}

	target := &entity.Target{
		ID:           uid.NewID("t"),
		PersonCAD:    req.PersonCAD,
		Priority:     entity.TargetPriority(req.Priority),
		Reason:       req.Reason,
		Observations: req.Observations,
		AddedBy:      actor.Email,
		AddedByName:  actor.Name(),
		CreatedDate:  utils.NowUTC(),
	}

	if err := t.TargetRepo.Save(target); err != nil {
		log.Errorf("failed to create target: %v", err)
		return nil, apierror.InternalServerError
	}

	t.Audit.Record(actor, entity.ActionCreate, "Target", target.ID, person.FullName,
		fmt.Sprintf("Alvo adicionado: %s (%s)", person.FullName, target.PersonCAD))
	return toTargetResponse(target, person), nil
}

// DeleteTarget removes a watchlist entry. Absent ids are a silent no-op.
func (t *TargetService) DeleteTarget(actor *entity.User, id string) apierror.ErrorResponse {
	target, err := t.TargetRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch target %s: %v", id, err)
		return apierror.InternalServerError
	}
	if target == nil {
		return nil
	}

	if err := t.TargetRepo.Delete(target.ID); err != nil {
		log.Errorf("failed to delete target %s: %v", id, err)
		return apierror.InternalServerError
	}

	t.Audit.Record(actor, entity.ActionDelete, "Target", target.ID, "",
		fmt.Sprintf("Alvo removido: %s", target.PersonCAD))
	return nil
}

func toTargetResponse(target *entity.Target, person *entity.Person) *contract.TargetResponse {
	resp := &contract.TargetResponse{
		ID:           target.ID,
		PersonCAD:    target.PersonCAD,
		Priority:     string(target.Priority),
		Reason:       target.Reason,
		Observations: target.Observations,
		AddedBy:      target.AddedBy,
		AddedByName:  target.AddedByName,
		CreatedDate:  utils.FormatEpoch(target.CreatedDate),
	}
	if person != nil {
		summary := &contract.PersonSummary{
			ID:          person.ID,
			CAD:         person.CAD,
			FullName:    person.FullName,
			Nickname:    person.Nickname,
			Status:      string(person.Status),
			DangerLevel: string(person.DangerLevel),
		}
		if len(person.Photos) > 0 {
			summary.Photo = person.Photos[0]
		}
		resp.Person = summary
	}
	return resp
}
