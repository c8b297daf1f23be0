package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	resend "github.com/refleksjon/coach-sync/repos/resend"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Admin is the interface for the user administration service.
type Admin interface {
	InviteAssistant(c *gin.Context, request resend.InviteRequest) error
	RedeemInvite(c *gin.Context, inviteCode string) error
	ApproveUser(c *gin.Context, uid, role string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Admin

	// The router instance to configure the HTTP routes.
	Router Router

	// Middleware applied to the routes reserved for the head coach. The
	// redeem route stays open to any authenticated user, since the invited
	// assistant has no role yet.
	CoachOnly gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/invite", opts.CoachOnly, h.inviteHandler)
	r.GET("/redeem/:invite_code", h.redeemHandler)
	r.POST("/approve/:uid", opts.CoachOnly, h.approveHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) inviteHandler(c *gin.Context) {
	var request resend.InviteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.InviteAssistant(c, request); err != nil {
		log.Printf("Could not send invite: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send invite"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": "Invite sent",
		"email":  request.Email,
	})
}

func (h *httpHandler) redeemHandler(c *gin.Context) {
	inviteCode := c.Param("invite_code")

	if err := h.Service.RedeemInvite(c, inviteCode); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "not valid invite code"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "Access granted"})
}

func (h *httpHandler) approveHandler(c *gin.Context) {
	uid := c.Param("uid")

	var request struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.ApproveUser(c, uid, request.Role); err != nil {
		if err == ErrUnknownRole {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{"uid": uid})
}
