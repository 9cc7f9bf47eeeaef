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

type TargetService interface {
	GetTargets() ([]*contract.TargetResponse, apierror.ErrorResponse)
	CreateTarget(actor *entity.User, req *contract.CreateTargetRequest) (*contract.TargetResponse, apierror.ErrorResponse)
	DeleteTarget(actor *entity.User, id string) apierror.ErrorResponse
}

type DefaultTargetRoute struct {
	TargetService TargetService
}

func NewTargetDefault(targetService TargetService) *DefaultTargetRoute {
	return &DefaultTargetRoute{TargetService: targetService}
}

func (t *DefaultTargetRoute) GetTargets(c echo.Context) error {
	targets, apierr := t.TargetService.GetTargets()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"targets": targets}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTargetRoute) CreateTarget(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateTargetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	target, apierr := t.TargetService.CreateTarget(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, target)
}

func (t *DefaultTargetRoute) DeleteTarget(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := t.TargetService.DeleteTarget(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
