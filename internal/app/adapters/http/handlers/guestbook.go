package handlers

import (
	"countdown/internal/app/adapters/view"
	"countdown/internal/app/domain/guestbook"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

type submitRequest struct {
	Name    string `json:"name" form:"name"`
	Message string `json:"message" form:"message"`
}

func (h *Handlers) StateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, view.FromState(h.screen.Snapshot(), h.previewSize()))
}

func (h *Handlers) SubmitHandler(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, st, err := h.screen.Submit(c.Request.Context(), req.Name, req.Message)
	if errors.Is(err, guestbook.ErrEmptyName) || errors.Is(err, guestbook.ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"alert": h.manager.Get().Guestbook.AlertText})
		return
	}
	if err != nil {
		h.log.Error("Error submitting message", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "screen is not running"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": msg,
		"state":   view.FromState(st, h.previewSize()),
	})
}

func (h *Handlers) ToggleHandler(c *gin.Context) {
	st, err := h.screen.Toggle(c.Request.Context())
	if err != nil {
		h.log.Error("Error toggling message list", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "screen is not running"})
		return
	}

	c.JSON(http.StatusOK, view.FromState(st, h.previewSize()))
}

func (h *Handlers) DisplayHandler(c *gin.Context) {
	if err := h.displays.ServeWS(c.Writer, c.Request); err != nil {
		h.log.Debug("Websocket upgrade failed", "error", err.Error())
	}
}
