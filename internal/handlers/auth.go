package handlers

import (
	"errors"
	"net/http"
	"time"

	"eduprep/internal/middleware"
	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, nil))
}

func (h *AuthHandler) Register(c *gin.Context) {
	_, err := h.authService.Register(c.PostForm("username"), c.PostForm("password"))
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		setFlash(c, "Username and password are required.")
		c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, services.ErrUsernameTaken):
		setFlash(c, "That username is already taken.")
		c.Redirect(http.StatusFound, "/register")
	case err != nil:
		setFlash(c, "Could not create the account.")
		c.Redirect(http.StatusFound, "/register")
	default:
		setFlash(c, "Account created. Log in now.")
		c.Redirect(http.StatusFound, "/login")
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, nil))
}

func (h *AuthHandler) Login(c *gin.Context) {
	token, err := h.authService.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		setFlash(c, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	setFlash(c, "Logged in.")
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	setFlash(c, "Logged out.")
	c.Redirect(http.StatusFound, "/")
}
