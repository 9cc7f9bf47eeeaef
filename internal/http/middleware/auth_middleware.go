package middleware

import (
	"net/http"

	"bud35/internal/domain/entity"
	"bud35/internal/domain/policy"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo UserRepository
}

// NewAuthMiddleware resolves the current user from the session token.
// No token means Unauthorized; a token whose email no longer matches any
// record is treated as a stale session and rejected so the client drops it.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindByEmail(tokenData.Email)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				return c.JSON(http.StatusUnauthorized, apierror.StaleSessionError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

// NewApprovedMiddleware blocks pending accounts from everything except the
// holding view (me/logout, which sit outside this chain).
func NewApprovedMiddleware(userPolicy *policy.UserPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, cerr := utils.GetUserFromContext(c)
			if cerr != nil {
				return c.JSON(cerr.Code(), cerr)
			}

			if perr := userPolicy.CanAccess(user); perr != nil {
				return c.JSON(perr.Code(), perr)
			}
			return next(c)
		}
	}
}

// NewAdminMiddleware restricts a group to admin-role accounts.
func NewAdminMiddleware(userPolicy *policy.UserPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, cerr := utils.GetUserFromContext(c)
			if cerr != nil {
				return c.JSON(cerr.Code(), cerr)
			}

			if perr := userPolicy.CanManageUsers(user); perr != nil {
				return c.JSON(perr.Code(), perr)
			}
			return next(c)
		}
	}
}
