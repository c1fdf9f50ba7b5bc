package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifechef-health/careportal-api/internal/model"
	apperrors "github.com/lifechef-health/careportal-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError writes an error response, mapping application errors to
// their HTTP status. Unclassified errors become a 500 with a generic
// message so internals never leak to clients.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.As(err); ok {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

// UserContextKey is where the auth middleware stores the signed-in user.
const UserContextKey = "current_user"

// CurrentUser returns the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(UserContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
