package policy

import (
	"bud35/internal/domain/entity"
	"bud35/internal/utils/apierror"
)

// UserPolicy is the single decision point for role × approved × is_master
// checks. It returns apierror.ErrorResponse directly for seamless
// integration with handlers.
type UserPolicy struct{}

func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// CanAccess gates every authenticated view except logout/me: pending
// accounts only get the awaiting-approval holding state.
func (p *UserPolicy) CanAccess(actor *entity.User) apierror.ErrorResponse {
	if actor.Pending() {
		return apierror.PendingApprovalError
	}
	return nil
}

// CanManageUsers gates the administration views and actions
// (list, role changes, display-name edits, approval, rejection).
func (p *UserPolicy) CanManageUsers(actor *entity.User) apierror.ErrorResponse {
	if actor.Role != entity.RoleAdmin {
		return apierror.AdminOnlyError
	}
	return nil
}

// CanApproveUser checks if 'actor' may approve or reject 'target'.
// Approval only makes sense against a pending account.
func (p *UserPolicy) CanApproveUser(actor, target *entity.User) apierror.ErrorResponse {
	if perr := p.CanManageUsers(actor); perr != nil {
		return perr
	}
	if !target.Pending() {
		return apierror.NewForbiddenError("user is not awaiting approval")
	}
	return nil
}

// CanDeleteUser checks if 'actor' may delete 'target'. Only the master
// account deletes users, never itself, and never another master.
func (p *UserPolicy) CanDeleteUser(actor, target *entity.User) apierror.ErrorResponse {
	if perr := p.CanManageUsers(actor); perr != nil {
		return perr
	}
	if !actor.IsMaster {
		return apierror.MasterOnlyError
	}
	if actor.ID == target.ID {
		return apierror.NewForbiddenError("accounts cannot delete themselves")
	}
	if target.IsMaster {
		return apierror.NewForbiddenError("the master account cannot be deleted")
	}
	return nil
}
