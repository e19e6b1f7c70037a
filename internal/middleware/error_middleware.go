package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP status codes and the
// error envelope. CustomError messages and field names pass through to the
// client; unknown errors are logged and masked as 500.
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := classify(err)

	detail := dto.NewErrorDetail(code, message)

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		if customErr.Message != "" {
			detail.Message = customErr.Message
		}
		if customErr.Field != "" {
			detail.WithField(customErr.Field)
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password"
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusBadRequest, dto.ErrorCodeExpiredToken, "Reset token has expired"
	case errors.Is(err, apperrors.ErrTokenUsed):
		return http.StatusBadRequest, dto.ErrorCodeInvalidToken, "Reset token was already used"
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusBadRequest, dto.ErrorCodeInvalidToken, "Invalid reset token"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"
	case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		return http.StatusBadRequest, dto.ErrorCodeFileNotAllowed, "File type not allowed"
	case errors.Is(err, apperrors.ErrDocumentRequired):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "At least one document must be uploaded."
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"
	case errors.Is(err, apperrors.ErrGuardianNotFound),
		errors.Is(err, apperrors.ErrAdmissionNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrStaffNotFound),
		errors.Is(err, apperrors.ErrPopupNotFound),
		errors.Is(err, apperrors.ErrContactNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}

// HandleValidationError maps a gin binding failure to a 400 envelope.
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
	if err != nil {
		detail.Message = err.Error()
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
