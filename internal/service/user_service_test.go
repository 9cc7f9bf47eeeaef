package service

import (
	"testing"

	"bud35/internal/contract"
	"bud35/internal/domain/entity"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)

	t.Run("first contact creates a pending account", func(t *testing.T) {
		resp, apierr := f.Users.Login(&contract.LoginRequest{Email: "novo.usuario@example.com"})
		require.Nil(t, apierr)
		require.NotEmpty(t, resp.Token)
		assert.Equal(t, "novo.usuario", resp.User.FullName)
		assert.Equal(t, "user", resp.User.Role)
		assert.True(t, resp.User.Pending)
		assert.Empty(t, resp.User.CAD)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, "Conta criada (pendente de aprovação): novo.usuario@example.com")
		assert.Contains(t, details, "Login realizado: novo.usuario@example.com")
	})

	t.Run("repeat login resolves the same account case-insensitively", func(t *testing.T) {
		first, apierr := f.Users.Login(&contract.LoginRequest{Email: "Maria.Lima@example.com"})
		require.Nil(t, apierr)

		second, apierr := f.Users.Login(&contract.LoginRequest{Email: "maria.lima@EXAMPLE.COM"})
		require.Nil(t, apierr)
		assert.Equal(t, first.User.ID, second.User.ID)
		assert.Equal(t, "Maria.Lima@example.com", second.User.Email)
	})

	t.Run("token subject keeps the stored email case", func(t *testing.T) {
		resp, apierr := f.Users.Login(&contract.LoginRequest{Email: "Caso.Exato@example.com"})
		require.Nil(t, apierr)

		data, err := utils.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "Caso.Exato@example.com", data.Email)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		_, apierr := f.Users.Login(&contract.LoginRequest{Email: "not-an-email"})
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})
}

func TestApproveUser(t *testing.T) {
	f := newFixture(t)
	admin := adminActor()

	login, apierr := f.Users.Login(&contract.LoginRequest{Email: "pendente@example.com"})
	require.Nil(t, apierr)
	pendingID := login.User.ID

	t.Run("assigns the next USR number and flips approval", func(t *testing.T) {
		resp, apierr := f.Users.ApproveUser(admin, pendingID)
		require.Nil(t, apierr)
		assert.True(t, resp.Approved)
		assert.False(t, resp.Pending)
		assert.Equal(t, "USR-00001", resp.CAD)
		assert.Equal(t, admin.Email, resp.ApprovedBy)
		assert.NotEmpty(t, resp.ApprovedDate)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, "Usuário aprovado: pendente - USR-00001")
	})

	t.Run("approving an already approved account is forbidden", func(t *testing.T) {
		_, apierr := f.Users.ApproveUser(admin, pendingID)
		require.NotNil(t, apierr)
		assert.Equal(t, 403, apierr.Code())
	})

	t.Run("non-admin actors are denied", func(t *testing.T) {
		other, loginErr := f.Users.Login(&contract.LoginRequest{Email: "outro@example.com"})
		require.Nil(t, loginErr)

		officer := &entity.User{ID: "u_off", Email: "officer@example.com", Role: entity.RoleOfficer, Approved: true}
		_, apierr := f.Users.ApproveUser(officer, other.User.ID)
		require.NotNil(t, apierr)
		assert.Equal(t, apierror.AdminOnlyError, apierr)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		_, apierr := f.Users.ApproveUser(admin, "u_missing")
		require.NotNil(t, apierr)
		assert.Equal(t, apierror.NotFoundError, apierr)
	})

	t.Run("USR numbers keep increasing", func(t *testing.T) {
		login2, apierr := f.Users.Login(&contract.LoginRequest{Email: "segundo@example.com"})
		require.Nil(t, apierr)

		resp, apierr := f.Users.ApproveUser(admin, login2.User.ID)
		require.Nil(t, apierr)
		assert.Equal(t, "USR-00002", resp.CAD)
	})
}

func TestRejectUser(t *testing.T) {
	f := newFixture(t)
	admin := adminActor()

	login, apierr := f.Users.Login(&contract.LoginRequest{Email: "rejeitado@example.com"})
	require.Nil(t, apierr)

	t.Run("removes a pending account", func(t *testing.T) {
		apierr := f.Users.RejectUser(admin, login.User.ID)
		require.Nil(t, apierr)

		gone, err := f.UserRepo.FindByID(login.User.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, "Usuário rejeitado: rejeitado")
	})

	t.Run("cannot reject an approved account", func(t *testing.T) {
		login2, apierr := f.Users.Login(&contract.LoginRequest{Email: "aprovado@example.com"})
		require.Nil(t, apierr)
		_, apierr = f.Users.ApproveUser(admin, login2.User.ID)
		require.Nil(t, apierr)

		rejErr := f.Users.RejectUser(admin, login2.User.ID)
		require.NotNil(t, rejErr)
		assert.Equal(t, 403, rejErr.Code())
	})
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	master := masterActor()
	require.NoError(t, f.UserRepo.Save(master))

	admin := adminActor()
	require.NoError(t, f.UserRepo.Save(admin))

	login, apierr := f.Users.Login(&contract.LoginRequest{Email: "descartavel@example.com"})
	require.Nil(t, apierr)
	_, apierr = f.Users.ApproveUser(master, login.User.ID)
	require.Nil(t, apierr)

	t.Run("non-master admins are denied", func(t *testing.T) {
		apierr := f.Users.DeleteUser(admin, login.User.ID)
		require.NotNil(t, apierr)
		assert.Equal(t, apierror.MasterOnlyError, apierr)
	})

	t.Run("master cannot delete itself", func(t *testing.T) {
		apierr := f.Users.DeleteUser(master, master.ID)
		require.NotNil(t, apierr)
		assert.Equal(t, 403, apierr.Code())
	})

	t.Run("master accounts cannot be deleted", func(t *testing.T) {
		second := masterActor()
		second.ID = "u_master2"
		second.Email = "master2@example.com"
		require.NoError(t, f.UserRepo.Save(second))

		apierr := f.Users.DeleteUser(master, second.ID)
		require.NotNil(t, apierr)
		assert.Equal(t, 403, apierr.Code())
	})

	t.Run("master deletes a regular account", func(t *testing.T) {
		apierr := f.Users.DeleteUser(master, login.User.ID)
		require.Nil(t, apierr)

		gone, err := f.UserRepo.FindByID(login.User.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, "Usuário excluído: descartavel")
	})

	t.Run("deleting an absent id is a no-op", func(t *testing.T) {
		apierr := f.Users.DeleteUser(master, "u_missing")
		assert.Nil(t, apierr)
	})
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	admin := adminActor()

	login, apierr := f.Users.Login(&contract.LoginRequest{Email: "editavel@example.com"})
	require.Nil(t, apierr)

	t.Run("changes role and audits it", func(t *testing.T) {
		role := "officer"
		resp, apierr := f.Users.UpdateUser(admin, login.User.ID, &contract.UpdateUserRequest{Role: &role})
		require.Nil(t, apierr)
		assert.Equal(t, "officer", resp.Role)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, "Papel alterado para: officer")
	})

	t.Run("changes display name and audits it", func(t *testing.T) {
		name := "Agente X"
		resp, apierr := f.Users.UpdateUser(admin, login.User.ID, &contract.UpdateUserRequest{DisplayName: &name})
		require.Nil(t, apierr)
		assert.Equal(t, "Agente X", resp.DisplayName)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, "Nome de exibição alterado para: Agente X")
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		role := "chefe"
		_, apierr := f.Users.UpdateUser(admin, login.User.ID, &contract.UpdateUserRequest{Role: &role})
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})

	t.Run("non-admin actors are denied", func(t *testing.T) {
		role := "admin"
		officer := &entity.User{ID: "u_off", Email: "officer@example.com", Role: entity.RoleOfficer, Approved: true}
		_, apierr := f.Users.UpdateUser(officer, login.User.ID, &contract.UpdateUserRequest{Role: &role})
		require.NotNil(t, apierr)
		assert.Equal(t, apierror.AdminOnlyError, apierr)
	})
}

func TestMe(t *testing.T) {
	f := newFixture(t)

	login, apierr := f.Users.Login(&contract.LoginRequest{Email: "eu@example.com"})
	require.Nil(t, apierr)

	user, err := f.UserRepo.FindByID(login.User.ID)
	require.NoError(t, err)

	resp := f.Users.Me(user)
	assert.Equal(t, login.User.ID, resp.ID)
	assert.True(t, resp.Pending)
}
