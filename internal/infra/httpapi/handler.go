package httpapi

import (
	"net/http"
	"strconv"

	"gym_attendance_notifier/internal/app"
	"gym_attendance_notifier/internal/domain/pipeline"

	"github.com/gin-gonic/gin"
)

type handler struct {
	notifier *app.NotifierService
	members  *app.MemberService
}

func (h *handler) registerRoutes(api *gin.RouterGroup) {
	api.GET("/members", h.listMembers)
	api.GET("/members/:id/notification", h.getNotification)
	api.GET("/notifications", h.listNotifications)
	api.POST("/members/:id/notify", h.notifyMember)
	api.POST("/notify-all", h.notifyAll)
	api.PUT("/members/:id/token", h.updateChannelToken)
}

type memberResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Goal     string `json:"goal"`
	HasToken bool   `json:"has_token"`
}

func (h *handler) listMembers(c *gin.Context) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, memberResponse{
			ID:       m.ID,
			Name:     m.Name,
			Goal:     m.Goal,
			HasToken: m.HasChannelToken(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) getNotification(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}
	result := h.notifier.Compute(c.Request.Context(), id)
	c.JSON(statusFor(result.Outcome), result)
}

func (h *handler) notifyMember(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}
	result := h.notifier.Notify(c.Request.Context(), id)
	c.JSON(statusFor(result.Outcome), result)
}

func (h *handler) listNotifications(c *gin.Context) {
	batch, err := h.notifier.ComputeAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *handler) notifyAll(c *gin.Context) {
	batch, err := h.notifier.NotifyAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, batch)
}

type tokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *handler) updateChannelToken(c *gin.Context) {
	id, ok := memberID(c)
	if !ok {
		return
	}

	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if err := h.members.UpdateChannelToken(c.Request.Context(), id, req.Token); err != nil {
		if err == app.ErrMemberNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// memberID normalizes the opaque path id to the store's numeric key.
func memberID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member id must be numeric"})
		return 0, false
	}
	return id, true
}

func statusFor(outcome pipeline.Outcome) int {
	switch outcome {
	case pipeline.OutcomeNotFound:
		return http.StatusNotFound
	case pipeline.OutcomeUnavailable:
		return http.StatusServiceUnavailable
	case pipeline.OutcomeGenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
