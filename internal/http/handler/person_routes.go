package handler

import (
	"net/http"
	"strings"

	"bud35/internal/contract"
	"bud35/internal/domain/entity"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PersonService interface {
	GetPersons(criteria map[string]any) ([]*contract.PersonResponse, apierror.ErrorResponse)
	GetPerson(actor *entity.User, id string) (*contract.PersonResponse, apierror.ErrorResponse)
	CreatePerson(actor *entity.User, req *contract.CreatePersonRequest) (*contract.PersonResponse, apierror.ErrorResponse)
	UpdatePerson(actor *entity.User, id string, req *contract.UpdatePersonRequest) (*contract.PersonResponse, apierror.ErrorResponse)
}

type DefaultPersonRoute struct {
	PersonService PersonService
}

func NewPersonDefault(personService PersonService) *DefaultPersonRoute {
	return &DefaultPersonRoute{PersonService: personService}
}

// filterParams maps the query params accepted for exact-match filtering to
// their storage columns. Anything else is ignored; free-text search is a
// client concern over the full list.
var filterParams = map[string]string{
	"id":           "id",
	"cad":          "cad",
	"status":       "status",
	"danger_level": "danger_level",
	"faccionado":   "faccionado",
	"sex":          "sex",
	"city":         "city",
	"state":        "state",
}

func (p *DefaultPersonRoute) GetPersons(c echo.Context) error {
	criteria := map[string]any{}
	for param, column := range filterParams {
		val := strings.TrimSpace(c.QueryParam(param))
		if val == "" {
			continue
		}
		if column == "faccionado" {
			criteria[column] = val == "true"
			continue
		}
		criteria[column] = val
	}

	persons, apierr := p.PersonService.GetPersons(criteria)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"persons": persons}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPersonRoute) GetPerson(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	person, apierr := p.PersonService.GetPerson(user, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, person)
}

func (p *DefaultPersonRoute) CreatePerson(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	person, apierr := p.PersonService.CreatePerson(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, person)
}

func (p *DefaultPersonRoute) UpdatePerson(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	var req contract.UpdatePersonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	person, apierr := p.PersonService.UpdatePerson(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, person)
}
