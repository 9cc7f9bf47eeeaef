package service

import (
	"fmt"
	"testing"

	"bud35/internal/contract"
	"bud35/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTarget(t *testing.T) {
	f := newFixture(t)
	actor := adminActor()

	person, apierr := f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
		FullName: "Ricardo Mendes",
		Photos:   []string{"/uploads/rick.jpg"},
	})
	require.Nil(t, apierr)

	t.Run("adds an existing person to the watchlist", func(t *testing.T) {
		resp, apierr := f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
			PersonCAD: person.CAD,
			Priority:  "alta",
			Reason:    "Mandado em aberto",
		})
		require.Nil(t, apierr)
		assert.Equal(t, person.CAD, resp.PersonCAD)
		assert.Equal(t, "alta", resp.Priority)
		assert.Equal(t, actor.Email, resp.AddedBy)
		require.NotNil(t, resp.Person)
		assert.Equal(t, "Ricardo Mendes", resp.Person.FullName)
		assert.Equal(t, "/uploads/rick.jpg", resp.Person.Photo)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, fmt.Sprintf("Alvo adicionado: Ricardo Mendes (%s)", person.CAD))
	})

	t.Run("rejects a duplicate person", func(t *testing.T) {
		_, apierr := f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
			PersonCAD: person.CAD,
			Priority:  "media",
		})
		require.NotNil(t, apierr)
		assert.Equal(t, apierror.DuplicateTargetError, apierr)
	})

	t.Run("rejects an unknown person CAD", func(t *testing.T) {
		_, apierr := f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
			PersonCAD: "CAD-99999",
			Priority:  "alta",
		})
		require.NotNil(t, apierr)
		assert.Equal(t, apierror.UnknownPersonCADError, apierr)
	})

	t.Run("rejects a malformed CAD reference", func(t *testing.T) {
		_, apierr := f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
			PersonCAD: "CAD-1",
			Priority:  "alta",
		})
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})

	t.Run("rejects an unknown priority", func(t *testing.T) {
		second, apierr := f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
			FullName: "João Souza",
		})
		require.Nil(t, apierr)

		_, apierr = f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
			PersonCAD: second.CAD,
			Priority:  "urgente",
		})
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})
}

func TestGetTargets(t *testing.T) {
	f := newFixture(t)
	actor := adminActor()

	person, apierr := f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
		FullName: "Com Cadastro",
	})
	require.Nil(t, apierr)

	_, apierr = f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
		PersonCAD: person.CAD,
		Priority:  "critica",
	})
	require.Nil(t, apierr)

	t.Run("entries carry the referenced person", func(t *testing.T) {
		targets, apierr := f.Targets.GetTargets()
		require.Nil(t, apierr)
		require.Len(t, targets, 1)
		require.NotNil(t, targets[0].Person)
		assert.Equal(t, "Com Cadastro", targets[0].Person.FullName)
	})
}

func TestDeleteTarget(t *testing.T) {
	f := newFixture(t)
	actor := adminActor()

	person, apierr := f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
		FullName: "Removível",
	})
	require.Nil(t, apierr)

	created, apierr := f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
		PersonCAD: person.CAD,
		Priority:  "baixa",
	})
	require.Nil(t, apierr)

	t.Run("removes an entry and audits it", func(t *testing.T) {
		apierr := f.Targets.DeleteTarget(actor, created.ID)
		require.Nil(t, apierr)

		targets, apierr := f.Targets.GetTargets()
		require.Nil(t, apierr)
		assert.Empty(t, targets)

		details := auditDetails(f.auditEntries(t))
		assert.Contains(t, details, fmt.Sprintf("Alvo removido: %s", person.CAD))
	})

	t.Run("deleting an absent id is a no-op", func(t *testing.T) {
		apierr := f.Targets.DeleteTarget(actor, created.ID)
		assert.Nil(t, apierr)
	})

	t.Run("removed person can be listed again", func(t *testing.T) {
		_, apierr := f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
			PersonCAD: person.CAD,
			Priority:  "media",
		})
		assert.Nil(t, apierr)
	})
}
