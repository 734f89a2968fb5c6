package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// sessionCookieMaxAge keeps the cookie alive as long as the signed token;
// the server-side store enforces the real expiry.
const sessionCookieMaxAge = 12 * 60 * 60 // seconds

type signupForm struct {
	Name     string `form:"name" binding:"required"`
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) getSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *Handler) postSignup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "All signup fields are required")
		return
	}

	id, err := h.services.SignUp(form.Name, form.Username, form.Password)
	if err != nil {
		h.logAndPlainError(c, "Error occurred during signup", "signup_failed", err, "username", form.Username)
		return
	}

	if h.log != nil {
		h.log.Infow("user_signed_up", "user_id", id, "username", form.Username)
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) getLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": nil})
}

func (h *Handler) postLogin(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)

	user, err := h.services.Login(form.Username, form.Password)
	if err != nil {
		// A credential mismatch is a normal branch, not a failure: the
		// login page is re-rendered with an inline message and any
		// existing session is left untouched.
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Invalid username or password"})
			return
		}
		h.logAndPlainError(c, "Error occurred during login", "login_failed", err, "username", form.Username)
		return
	}

	sess := h.sessions.Start(user.ID, user.Name)
	token, err := h.codec.Encode(sess.ID)
	if err != nil {
		h.sessions.Destroy(sess.ID)
		h.logAndPlainError(c, "Error occurred during login", "session_token_failed", err)
		return
	}

	c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/home")
}

// logout destroys the server-side session and clears the cookie.
func (h *Handler) logout(c *gin.Context) {
	if value, err := c.Cookie(sessionCookieName); err == nil && value != "" {
		if sessionID, err := h.codec.Decode(value); err == nil {
			h.sessions.Destroy(sessionID)
		}
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
