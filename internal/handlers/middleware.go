package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// sessionCookieName names the cookie carrying the signed session token.
	sessionCookieName = "fintrack_session"

	ctxUserIDKey   = "userId"
	ctxUserNameKey = "userName"
)

// sessionMiddleware resolves the session cookie into a logged-in user and
// stores the identity in the Gin context. Anything short of a live session
// means a redirect to the login page, never an error body.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	value, err := c.Cookie(sessionCookieName)
	if err != nil || value == "" {
		h.redirectToLogin(c)
		return
	}

	sessionID, err := h.codec.Decode(value)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_cookie_rejected", "err", err)
		}
		h.redirectToLogin(c)
		return
	}

	sess, ok := h.sessions.Get(sessionID)
	if !ok {
		h.redirectToLogin(c)
		return
	}

	c.Set(ctxUserIDKey, sess.UserID)
	c.Set(ctxUserNameKey, sess.Name)
	c.Next()
}

func (h *Handler) redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// currentUser reads the identity the middleware put into the context.
func currentUser(c *gin.Context) (int, string) {
	return c.GetInt(ctxUserIDKey), c.GetString(ctxUserNameKey)
}
