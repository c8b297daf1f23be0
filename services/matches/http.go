package matches

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	club "github.com/refleksjon/coach-sync/repos/club"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Matches is the interface for the match approval service.
type Matches interface {
	ApproveDraft(c *gin.Context, assistantUID, matchID string, edits club.MatchUpdate) error
	EditMatch(c *gin.Context, matchID string, edits club.MatchUpdate) error
	DeleteMatch(c *gin.Context, source, assistantUID, matchID string) error
	GetMatch(c *gin.Context, source, assistantUID, matchID string) (*club.Match, error)
	AddEvent(c *gin.Context, matchID string, event club.Event) error
	UpdateEventText(c *gin.Context, matchID string, index int, text string) error
	DeleteEvent(c *gin.Context, matchID string, index int) error
	ListMatches(c *gin.Context, assistantFilter, statusFilter string) ([]club.Match, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Matches

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/list", h.listHandler)
	r.GET("/match/:match_id", h.getHandler)
	r.POST("/approve/:assistant_uid/:match_id", h.approveHandler)
	r.POST("/match/:match_id", h.editHandler)
	r.DELETE("/match/:match_id", h.deleteHandler)
	r.POST("/match/:match_id/events", h.addEventHandler)
	r.PUT("/match/:match_id/events/:index", h.updateEventHandler)
	r.DELETE("/match/:match_id/events/:index", h.deleteEventHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) listHandler(c *gin.Context) {
	assistantFilter := c.Query("assistant")
	statusFilter := c.Query("status")

	rows, err := h.Service.ListMatches(c, assistantFilter, statusFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": rows})
}

func (h *httpHandler) getHandler(c *gin.Context) {
	matchID := c.Param("match_id")
	source := c.Query("source")
	assistantUID := c.Query("assistantUid")

	match, err := h.Service.GetMatch(c, source, assistantUID, matchID)
	if err != nil {
		if err == ErrMatchNotFound || err == ErrDraftNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

func (h *httpHandler) approveHandler(c *gin.Context) {
	assistantUID := c.Param("assistant_uid")
	matchID := c.Param("match_id")

	var edits club.MatchUpdate
	if err := c.ShouldBindJSON(&edits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err := h.Service.ApproveDraft(c, assistantUID, matchID, edits)
	if err != nil {
		if err == ErrDraftNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		log.Printf("Could not approve draft: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Match approved",
		"matchId": matchID,
	})
}

func (h *httpHandler) editHandler(c *gin.Context) {
	matchID := c.Param("match_id")

	var edits club.MatchUpdate
	if err := c.ShouldBindJSON(&edits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	err := h.Service.EditMatch(c, matchID, edits)
	if err != nil {
		if err == ErrMatchNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchId": matchID})
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	matchID := c.Param("match_id")
	source := c.Query("source")
	assistantUID := c.Query("assistantUid")

	err := h.Service.DeleteMatch(c, source, assistantUID, matchID)
	if err != nil {
		if err == ErrMatchNotFound || err == ErrDraftNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": matchID})
}

func (h *httpHandler) addEventHandler(c *gin.Context) {
	matchID := c.Param("match_id")

	var event club.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.AddEvent(c, matchID, event); err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchId": matchID})
}

func (h *httpHandler) updateEventHandler(c *gin.Context) {
	matchID := c.Param("match_id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event index"})
		c.Abort()
		return
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.UpdateEventText(c, matchID, index, payload.Text); err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchId": matchID})
}

func (h *httpHandler) deleteEventHandler(c *gin.Context) {
	matchID := c.Param("match_id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event index"})
		c.Abort()
		return
	}

	if err := h.Service.DeleteEvent(c, matchID, index); err != nil {
		h.eventError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchId": matchID})
}

func (h *httpHandler) eventError(c *gin.Context, err error) {
	switch err {
	case ErrMatchNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case ErrEventNotFound:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
	c.Abort()
}
