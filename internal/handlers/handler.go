package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/logger"
	"fintrack/internal/service"
	"fintrack/internal/session"
	"fintrack/web"

	"github.com/gin-gonic/gin"
)

// Handler wires the HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Store
	codec    *session.Codec
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Store, codec *session.Codec, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, codec: codec, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	// Health endpoint
	router.GET("/health", h.health)

	// Entry points, reachable without a session
	router.GET("/", h.root)
	h.registerAuthRoutes(router)

	// Session-gated pages and form targets
	h.registerAppRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/signup", h.getSignup)
	r.POST("/signup", h.postSignup)
	r.GET("/login", h.getLogin)
	r.POST("/login", h.postLogin)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerAppRoutes(r *gin.Engine) {
	app := r.Group("/", h.sessionMiddleware)
	{
		app.GET("/home", h.getHome)
		app.GET("/accounts", h.getAccounts)
		app.GET("/incomes", h.getIncomes)
		app.GET("/expenses", h.getExpenses)
		app.GET("/budget", h.getBudget)

		app.POST("/createAccount", h.createAccount)
		app.POST("/deleteAccount", h.deleteAccount)
		app.POST("/addIncome", h.addIncome)
		app.POST("/addExpense", h.addExpense)
		app.POST("/allocateBudget", h.allocateBudget)
		app.POST("/removeBudget", h.removeBudget)
		app.POST("/removeAllTransactions", h.removeAllTransactions)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// root sends unauthenticated visitors to the signup page.
func (h *Handler) root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/signup")
}

// logAndPlainError logs the failure and answers with a generic message;
// validation failures become 400, everything else a 500.
func (h *Handler) logAndPlainError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	code := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidInput) {
		code = http.StatusBadRequest
	}
	c.String(code, userMsg)
}
