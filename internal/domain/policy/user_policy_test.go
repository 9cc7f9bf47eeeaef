package policy

import (
	"testing"

	"bud35/internal/domain/entity"
	"bud35/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
)

func pendingUser() *entity.User {
	return &entity.User{ID: "u1", Role: entity.RoleUser, Approved: false}
}

func approvedUser() *entity.User {
	return &entity.User{ID: "u2", Role: entity.RoleUser, Approved: true}
}

func admin() *entity.User {
	return &entity.User{ID: "u3", Role: entity.RoleAdmin, Approved: true}
}

func master() *entity.User {
	return &entity.User{ID: "u4", Role: entity.RoleAdmin, Approved: true, IsMaster: true}
}

func TestCanAccess(t *testing.T) {
	p := NewUserPolicy()

	assert.Equal(t, apierror.PendingApprovalError, p.CanAccess(pendingUser()))
	assert.Nil(t, p.CanAccess(approvedUser()))
	assert.Nil(t, p.CanAccess(admin()))

	t.Run("admins are never pending even without the approved flag", func(t *testing.T) {
		unapprovedAdmin := &entity.User{ID: "u5", Role: entity.RoleAdmin, Approved: false}
		assert.Nil(t, p.CanAccess(unapprovedAdmin))
	})
}

func TestCanManageUsers(t *testing.T) {
	p := NewUserPolicy()

	assert.Equal(t, apierror.AdminOnlyError, p.CanManageUsers(approvedUser()))
	assert.Equal(t, apierror.AdminOnlyError, p.CanManageUsers(&entity.User{Role: entity.RoleOfficer, Approved: true}))
	assert.Nil(t, p.CanManageUsers(admin()))
}

func TestCanApproveUser(t *testing.T) {
	p := NewUserPolicy()

	assert.Nil(t, p.CanApproveUser(admin(), pendingUser()))
	assert.Equal(t, apierror.AdminOnlyError, p.CanApproveUser(approvedUser(), pendingUser()))

	t.Run("only pending accounts can be approved", func(t *testing.T) {
		perr := p.CanApproveUser(admin(), approvedUser())
		assert.NotNil(t, perr)
		assert.Equal(t, 403, perr.Code())
	})
}

func TestCanDeleteUser(t *testing.T) {
	p := NewUserPolicy()

	assert.Nil(t, p.CanDeleteUser(master(), approvedUser()))
	assert.Equal(t, apierror.MasterOnlyError, p.CanDeleteUser(admin(), approvedUser()))
	assert.Equal(t, apierror.AdminOnlyError, p.CanDeleteUser(approvedUser(), pendingUser()))

	t.Run("master cannot delete itself", func(t *testing.T) {
		m := master()
		perr := p.CanDeleteUser(m, m)
		assert.NotNil(t, perr)
		assert.Equal(t, 403, perr.Code())
	})

	t.Run("another master is off limits", func(t *testing.T) {
		other := master()
		other.ID = "u9"
		perr := p.CanDeleteUser(master(), other)
		assert.NotNil(t, perr)
		assert.Equal(t, 403, perr.Code())
	})
}
