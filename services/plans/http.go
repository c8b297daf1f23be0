package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"

	club "github.com/refleksjon/coach-sync/repos/club"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Plans is the interface for the development plan service.
type Plans interface {
	GetPlan(c *gin.Context, playerID, position string) (*PlanView, error)
	SavePlan(c *gin.Context, playerID string, request PlanRequest) error
	ListHistory(c *gin.Context, playerID string) ([]club.Plan, error)
	BankFor(c *gin.Context, position string) []FocusArea
	ReloadBank(c *gin.Context) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Plans

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/plan/:player_id", h.getPlanHandler)
	r.POST("/plan/:player_id", h.savePlanHandler)
	r.GET("/plan/:player_id/history", h.historyHandler)
	r.GET("/bank/:position", h.bankHandler)
	r.GET("/reload", h.reloadHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) getPlanHandler(c *gin.Context) {
	playerID := c.Param("player_id")
	position := c.Query("position")

	plan, err := h.Service.GetPlan(c, playerID, position)
	if err != nil {
		if err == ErrPlanNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *httpHandler) savePlanHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	var request PlanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.SavePlan(c, playerID, request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"playerId": playerID})
}

func (h *httpHandler) historyHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	history, err := h.Service.ListHistory(c, playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *httpHandler) bankHandler(c *gin.Context) {
	position := c.Param("position")
	c.JSON(http.StatusOK, gin.H{"areas": h.Service.BankFor(c, position)})
}

func (h *httpHandler) reloadHandler(c *gin.Context) {
	if err := h.Service.ReloadBank(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank reloaded"})
}
