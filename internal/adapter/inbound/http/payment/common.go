package payment

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/gamehub/payments/internal/shared/errors"
)

// respondError maps an application error to the JSON error contract.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, appErr.ToResponse())
		return
	}

	status := apperrors.GetStatusCode(err)
	code := codeFor(err)
	c.JSON(status, apperrors.ErrorResponse{
		Error: apperrors.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return "INVALID_ARGUMENT"
	case errors.Is(err, apperrors.ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, apperrors.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, apperrors.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, apperrors.ErrStorageUnavailable), errors.Is(err, apperrors.ErrPublishUnavailable):
		return "UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// uuidFromString parses a UUID field from a request body.
func uuidFromString(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperrors.InvalidArgument(field + " must be a valid UUID")
	}
	return id, nil
}

// pathUUID parses a UUID path parameter, responding 400 on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.InvalidArgument(name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
