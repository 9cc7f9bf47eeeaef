package handler

import (
	"net/http"
	"strconv"
	"strings"

	"bud35/internal/contract"
	"bud35/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AuditService interface {
	GetRecent(sort string, limit int) ([]*contract.AuditLogResponse, apierror.ErrorResponse)
}

type DefaultAuditRoute struct {
	AuditService AuditService
}

func NewAuditDefault(auditService AuditService) *DefaultAuditRoute {
	return &DefaultAuditRoute{AuditService: auditService}
}

func (a *DefaultAuditRoute) GetAuditLog(c echo.Context) error {
	limit := 0
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("limit", "int"))
		}
		limit = parsed
	}

	entries, apierr := a.AuditService.GetRecent(c.QueryParam("sort"), limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"entries": entries}
	return c.JSON(http.StatusOK, &resp)
}
