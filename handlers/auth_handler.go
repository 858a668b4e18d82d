package handlers

import (
	"github.com/donelist/todo-backend/errors"
	"github.com/donelist/todo-backend/logger"
	"github.com/gin-gonic/gin"
)

// LoginRequest holds the credentials for the login placeholder.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// AuthHandler holds the authentication routes. Authentication is a
// placeholder: the routes exist and validate their input, but no credential
// check, session, or token issuance is wired.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginHandler handles POST /login. It accepts JSON or form credentials and
// answers 501 until a user store exists to authenticate against.
//
// TODO: authenticate against a user store and issue a session cookie.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req LoginRequest
	if appErr := bindJSONOrForm(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}

	log.Infow("Login attempted against unimplemented endpoint", "username", req.Username)
	_ = c.Error(errors.NotImplemented("Login is not implemented"))
}
