package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docvault/internal/app"
	"docvault/internal/model"
	"docvault/internal/transport/http/middleware"
	"docvault/internal/transport/http/response"
)

// resolveUser turns the token subject set by the JWT middleware into a user
// row. A token can outlive its account, so a valid token whose subject no
// longer exists is a 404, not a 401. On failure the response is already
// written and the handler must return.
func resolveUser(c *gin.Context, authService *app.AuthService) (*model.User, bool) {
	subjectAny, exists := c.Get(middleware.ContextSubjectKey)
	subject, ok := subjectAny.(string)
	if !exists || !ok || subject == "" {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return nil, false
	}

	user, err := authService.GetUserByUsername(subject)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "resolve current user failed")
		return nil, false
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, "user not found")
		return nil, false
	}
	return user, true
}
