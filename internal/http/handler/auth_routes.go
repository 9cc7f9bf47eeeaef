package handler

import (
	"net/http"

	"bud35/internal/contract"
	"bud35/internal/domain/entity"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AuthService interface {
	Login(req *contract.LoginRequest) (*contract.LoginResponse, apierror.ErrorResponse)
	Me(actor *entity.User) *contract.UserResponse
}

type DefaultAuthRoute struct {
	UserService AuthService
}

func NewAuthDefault(userService AuthService) *DefaultAuthRoute {
	return &DefaultAuthRoute{UserService: userService}
}

func (a *DefaultAuthRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAuthRoute) Me(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}
	return c.JSON(http.StatusOK, a.UserService.Me(user))
}

// Logout is stateless on the server; the client discards its token.
func (a *DefaultAuthRoute) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
