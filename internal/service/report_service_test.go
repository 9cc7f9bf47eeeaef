package service

import (
	"testing"

	"bud35/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryReport(t *testing.T) {
	f := newFixture(t)
	actor := adminActor()

	_, apierr := f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
		FullName:    "Procurado Faccionado",
		Status:      "procurado",
		DangerLevel: "alta",
		Faccionado:  true,
	})
	require.Nil(t, apierr)
	_, apierr = f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
		FullName: "Preso Comum",
		Status:   "preso",
	})
	require.Nil(t, apierr)
	third, apierr := f.Persons.CreatePerson(actor, &contract.CreatePersonRequest{
		FullName: "Outro Procurado",
	})
	require.Nil(t, apierr)

	_, apierr = f.Targets.CreateTarget(actor, &contract.CreateTargetRequest{
		PersonCAD: third.CAD,
		Priority:  "critica",
	})
	require.Nil(t, apierr)

	report, apierr := f.Reports.Summary()
	require.Nil(t, apierr)

	assert.Equal(t, int64(3), report.TotalPersons)
	assert.Equal(t, int64(1), report.TotalTargets)
	assert.Equal(t, int64(1), report.Faccionados)
	assert.Equal(t, int64(2), report.ByStatus["procurado"])
	assert.Equal(t, int64(1), report.ByStatus["preso"])
	assert.Equal(t, int64(1), report.ByDanger["alta"])
	assert.Equal(t, int64(1), report.ByPriority["critica"])
	assert.NotEmpty(t, report.GeneratedAt)
}
