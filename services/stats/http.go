package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	club "github.com/refleksjon/coach-sync/repos/club"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Stats is the interface for the statistics service.
type Stats interface {
	SeasonStats(c *gin.Context, typeFilter string) ([]PlayerStatLine, error)
	MatchStats(c *gin.Context, matchID string) ([]PlayerStatLine, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Stats

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/season", h.seasonHandler)
	r.GET("/match/:match_id", h.matchHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) seasonHandler(c *gin.Context) {
	typeFilter := c.Query("type")

	lines, err := h.Service.SeasonStats(c, typeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": lines})
}

func (h *httpHandler) matchHandler(c *gin.Context) {
	matchID := c.Param("match_id")

	lines, err := h.Service.MatchStats(c, matchID)
	if err != nil {
		if err == club.ErrMatchNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": lines})
}
