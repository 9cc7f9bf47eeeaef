package service

import (
	"fmt"
	"strings"

	"bud35/internal/contract"
	"bud35/internal/domain/entity"
	"bud35/internal/domain/policy"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"
	"bud35/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindAll() ([]*entity.User, error)
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Save(user *entity.User) error
	Delete(id string) error
}

type UserService struct {
	UserRepo   UserRepository
	Sequences  SequenceRepository
	Audit      *AuditService
	UserPolicy *policy.UserPolicy
	Validate   *validator.Validate
}

func NewUserService(
	userRepo UserRepository,
	sequences SequenceRepository,
	audit *AuditService,
	userPolicy *policy.UserPolicy,
	validate *validator.Validate,
) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		Sequences:  sequences,
		Audit:      audit,
		UserPolicy: userPolicy,
		Validate:   validate,
	}
}

// Login resolves an account by case-insensitive email, creating a pending
// one on first contact. There is no password or external identity check —
// this is a placeholder identity step; possession of a valid email is the
// whole credential. Always returns a session token for the resolved user.
func (u *UserService) Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		now := utils.NowUTC()
		user = &entity.User{
			ID:        uid.NewID("u"),
			FullName:  emailLocalPart(req.Email),
			Email:     req.Email,
			Role:      entity.RoleUser,
			Approved:  false,
			CAD:       "",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.UserRepo.Save(user); err != nil {
			log.Errorf("failed to create pending user %s: %v", req.Email, err)
			return nil, apierror.InternalServerError
		}

		u.Audit.Record(user, entity.ActionUserCreate, "User", user.ID, user.FullName,
			fmt.Sprintf("Conta criada (pendente de aprovação): %s", user.Email))
	}

	// The token subject keeps the exact case the record was stored with.
	token, err := utils.IssueSessionToken(user.Email)
	if err != nil {
		log.Errorf("failed to issue session token for %s: %v", user.Email, err)
		return nil, apierror.InternalServerError
	}

	u.Audit.Record(user, entity.ActionLogin, "User", user.ID, user.FullName,
		fmt.Sprintf("Login realizado: %s", user.Email))
	return &contract.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// Me returns the resolved current user; the pending flag tells the client
// to show only the awaiting-approval state.
func (u *UserService) Me(actor *entity.User) *contract.UserResponse {
	return toUserResponse(actor)
}

func (u *UserService) GetUsers(actor *entity.User) ([]*contract.UserResponse, apierror.ErrorResponse) {
	if perr := u.UserPolicy.CanManageUsers(actor); perr != nil {
		return nil, perr
	}

	users, err := u.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	return resp, nil
}

// UpdateUser applies role and display-name edits, auditing each change.
func (u *UserService) UpdateUser(actor *entity.User, targetID string, req *contract.UpdateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if perr := u.UserPolicy.CanManageUsers(actor); perr != nil {
		return nil, perr
	}

	target, apierr := u.fetchByID(targetID)
	if apierr != nil {
		return nil, apierr
	}
	if target == nil {
		return nil, apierror.NotFoundError
	}

	dirty := false
	if req.Role != nil && entity.Role(*req.Role) != target.Role {
		target.Role = entity.Role(*req.Role)
		dirty = true
		u.Audit.Record(actor, entity.ActionUserUpdate, "User", target.ID, target.Name(),
			fmt.Sprintf("Papel alterado para: %s", target.Role))
	}
	if req.DisplayName != nil && *req.DisplayName != target.DisplayName {
		target.DisplayName = *req.DisplayName
		dirty = true
		u.Audit.Record(actor, entity.ActionUserUpdate, "User", target.ID, target.Name(),
			fmt.Sprintf("Nome de exibição alterado para: %s", *req.DisplayName))
	}

	if dirty {
		target.UpdatedAt = utils.NowUTC()
		if err := u.UserRepo.Save(target); err != nil {
			log.Errorf("failed to update user %s: %v", targetID, err)
			return nil, apierror.InternalServerError
		}
	}
	return toUserResponse(target), nil
}

// ApproveUser allocates the next USR-NNNNN from the user_cad sequence and
// flips the account to approved in a single update.
func (u *UserService) ApproveUser(actor *entity.User, targetID string) (*contract.UserResponse, apierror.ErrorResponse) {
	target, apierr := u.fetchByID(targetID)
	if apierr != nil {
		return nil, apierr
	}
	if target == nil {
		return nil, apierror.NotFoundError
	}

	if perr := u.UserPolicy.CanApproveUser(actor, target); perr != nil {
		return nil, perr
	}

	next, err := u.Sequences.Next(entity.SequenceUserCAD)
	if err != nil {
		log.Errorf("failed to allocate user CAD: %v", err)
		return nil, apierror.InternalServerError
	}

	target.Approved = true
	target.ApprovedBy = actor.Email
	target.ApprovedDate = utils.NowUTC()
	target.CAD = utils.FormatCAD("USR", next)
	target.UpdatedAt = utils.NowUTC()

	if err := u.UserRepo.Save(target); err != nil {
		log.Errorf("failed to approve user %s: %v", targetID, err)
		return nil, apierror.InternalServerError
	}

	u.Audit.Record(actor, entity.ActionUserUpdate, "User", target.ID, target.Name(),
		fmt.Sprintf("Usuário aprovado: %s - %s", target.Name(), target.CAD))
	return toUserResponse(target), nil
}

// RejectUser removes a still-pending account.
func (u *UserService) RejectUser(actor *entity.User, targetID string) apierror.ErrorResponse {
	target, apierr := u.fetchByID(targetID)
	if apierr != nil {
		return apierr
	}
	if target == nil {
		return apierror.NotFoundError
	}

	if perr := u.UserPolicy.CanApproveUser(actor, target); perr != nil {
		return perr
	}

	if err := u.UserRepo.Delete(target.ID); err != nil {
		log.Errorf("failed to reject user %s: %v", targetID, err)
		return apierror.InternalServerError
	}

	u.Audit.Record(actor, entity.ActionUserDelete, "User", target.ID, target.Name(),
		fmt.Sprintf("Usuário rejeitado: %s", target.Name()))
	return nil
}

// DeleteUser removes an account. Master-only; deleting an absent id is a
// no-op, not an error.
func (u *UserService) DeleteUser(actor *entity.User, targetID string) apierror.ErrorResponse {
	target, apierr := u.fetchByID(targetID)
	if apierr != nil {
		return apierr
	}
	if target == nil {
		return nil
	}

	if perr := u.UserPolicy.CanDeleteUser(actor, target); perr != nil {
		return perr
	}

	if err := u.UserRepo.Delete(target.ID); err != nil {
		log.Errorf("failed to delete user %s: %v", targetID, err)
		return apierror.InternalServerError
	}

	u.Audit.Record(actor, entity.ActionUserDelete, "User", target.ID, target.Name(),
		fmt.Sprintf("Usuário excluído: %s", target.Name()))
	return nil
}

func (u *UserService) fetchByID(id string) (*entity.User, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to find user by id %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        string(user.Role),
		CAD:         user.CAD,
		Approved:    user.Approved,
		ApprovedBy:  user.ApprovedBy,
		IsMaster:    user.IsMaster,
		Pending:     user.Pending(),
		CreatedAt:   utils.FormatEpoch(user.CreatedAt),
	}
	if user.ApprovedDate > 0 {
		resp.ApprovedDate = utils.FormatEpoch(user.ApprovedDate)
	}
	return resp
}
