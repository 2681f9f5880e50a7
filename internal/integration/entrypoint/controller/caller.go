// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/entrypoint/dto"
	"github.com/trackbill/backend/internal/integration/entrypoint/middleware"
)

// resolveCaller loads the authenticated user for handlers whose use cases
// scope results by role. It writes the error response itself; callers return
// immediately when ok is false.
func resolveCaller(ctx *gin.Context, users adapter.UserRepository) (*entity.User, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return nil, false
	}

	user, err := users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return nil, false
	}

	if !user.IsActive {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: "User account is deactivated",
			Code:  string(domainerror.ErrCodeUserInactive),
		})
		return nil, false
	}

	return user, true
}
