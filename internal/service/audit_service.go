package service

import (
	"bud35/internal/contract"
	"bud35/internal/domain/entity"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"
	"bud35/internal/utils/uid"

	"github.com/labstack/gommon/log"
)

type AuditRepository interface {
	Save(entry *entity.AuditLog) error
	FindRecent(limit int) ([]*entity.AuditLog, error)
}

type AuditService struct {
	AuditRepo AuditRepository
}

func NewAuditService(auditRepo AuditRepository) *AuditService {
	return &AuditService{AuditRepo: auditRepo}
}

// Record appends an audit entry alongside a business mutation.
// Fire-and-forget: a failed write is logged and never fails or rolls back
// the mutation it accompanies. There is no atomicity between the two.
func (a *AuditService) Record(actor *entity.User, action entity.AuditAction, entityType, entityID, entityName, details string) {
	entry := &entity.AuditLog{
		ID:         uid.NewID("log"),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
		CreatedAt:  utils.NowUTC(),
	}
	if actor != nil {
		entry.UserEmail = actor.Email
		entry.UserName = actor.FullName
	}

	if err := a.AuditRepo.Save(entry); err != nil {
		log.Errorf("failed to record audit entry (%s %s/%s): %v", action, entityType, entityID, err)
	}
}

// GetRecent lists entries newest-first. The sort parameter is accepted for
// compatibility but only the reverse-chronological order exists; any other
// value is ignored rather than rejected.
func (a *AuditService) GetRecent(sort string, limit int) ([]*contract.AuditLogResponse, apierror.ErrorResponse) {
	entries, err := a.AuditRepo.FindRecent(limit)
	if err != nil {
		log.Errorf("failed to fetch audit log: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AuditLogResponse, len(entries))
	for i, entry := range entries {
		resp[i] = toAuditLogResponse(entry)
	}
	return resp, nil
}

func toAuditLogResponse(entry *entity.AuditLog) *contract.AuditLogResponse {
	return &contract.AuditLogResponse{
		ID:         entry.ID,
		Action:     string(entry.Action),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		EntityName: entry.EntityName,
		UserEmail:  entry.UserEmail,
		UserName:   entry.UserName,
		Details:    entry.Details,
		CreatedAt:  utils.FormatEpoch(entry.CreatedAt),
	}
}
