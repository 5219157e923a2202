package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const notifyTimeout = 30 * time.Second

type MessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

// SendMessage stores a visitor's message as submitted and notifies the owner
// in the background.
func (h *Handler) SendMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SendMessage", err)
		return
	}

	msg, err := h.queries.CreateMessage(c.Request.Context(), &db.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		log.Errorf("SendMessage: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to send message", err))
		return
	}

	go h.notify(context.WithoutCancel(c.Request.Context()), *msg)

	utils.ResponseWithSuccess(c, http.StatusCreated, "Message sent successfully", msg)
}

func (h *Handler) notify(parent context.Context, msg db.Message) {
	ctx, cancel := context.WithTimeout(parent, notifyTimeout)
	defer cancel()
	if err := h.notifier.NotifyNewMessage(ctx, &msg); err != nil {
		log.Warnf("SendMessage: notification for message ID '%d' failed: %v", msg.ID, err)
	}
}

func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.queries.ListMessages(c.Request.Context())
	if err != nil {
		log.Errorf("ListMessages: %v", err)
		utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to retrieve messages", err))
		return
	}
	respondOK(c, "Messages retrieved successfully", messages)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ResponseWithAPIError(c, err)
		return
	}

	if err := h.queries.DeleteMessage(c.Request.Context(), id); err != nil {
		storeError(c, "DeleteMessage", "Message not found", "Failed to delete message", err)
		return
	}
	respondOK(c, "Message deleted successfully", nil)
}
