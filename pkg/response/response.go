package response

import (
	"errors"
	"net/http"

	"qubic-pay/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the structured failure envelope: kind + verbatim message.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// OK sends a 200 response with the bare payload. The engine's routes are
// consumed by an existing collaborator that expects entity-shaped bodies,
// so success responses carry no envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. *apperror.AppError values map to their
// HTTP status and code; anything else becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
	})
}
