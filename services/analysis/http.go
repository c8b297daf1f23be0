package analysis

import (
	"log"
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

// Analysis is the interface for the AI analysis service.
type Analysis interface {
	GeneratePlayerAnalysis(c *gin.Context, playerID string) (*club.Analysis, error)
	GetAnalysis(c *gin.Context, playerID string) (*club.Analysis, error)
	GeneratePlayerFeedback(c *gin.Context, playerID string) (*club.Feedback, error)
	SendFeedback(c *gin.Context, feedbackID string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Analysis

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/analyze/:player_id", h.analyzeHandler)
	r.GET("/analysis/:player_id", h.getAnalysisHandler)
	r.POST("/feedback/:player_id", h.feedbackHandler)
	r.POST("/feedback/send/:feedback_id", h.sendFeedbackHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) analyzeHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	analysis, err := h.Service.GeneratePlayerAnalysis(c, playerID)
	if err != nil {
		if err == ErrNoReflections {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		log.Printf("Could not generate analysis: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (h *httpHandler) getAnalysisHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	analysis, err := h.Service.GetAnalysis(c, playerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis found"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (h *httpHandler) feedbackHandler(c *gin.Context) {
	playerID := c.Param("player_id")

	feedback, err := h.Service.GeneratePlayerFeedback(c, playerID)
	if err != nil {
		if err == ErrNoReflections {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		log.Printf("Could not generate feedback: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbackId": feedback.ID,
		"feedback":   feedback.EditedText,
	})
}

func (h *httpHandler) sendFeedbackHandler(c *gin.Context) {
	feedbackID := c.Param("feedback_id")

	err := h.Service.SendFeedback(c, feedbackID)
	if err != nil {
		if err == ErrFeedbackNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback sent"})
}
