package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifeline-salud/backend/internal/model"
)

// EmailSender delivers one outbound message and returns the provider's id.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) (string, error)
}

type EmailHandler struct {
	sender EmailSender
}

func NewEmailHandler(sender EmailSender) *EmailHandler {
	return &EmailHandler{sender: sender}
}

// SendContact godoc
// @Summary Send a contact email
// @Tags email
// @Accept json
// @Produce json
// @Param request body model.SendContactRequest true "Email payload"
// @Success 201 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /send-contact [post]
func (h *EmailHandler) SendContact(c *gin.Context) {
	var req model.SendContactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.Subject == "" || req.HTML == "" {
		c.JSON(http.StatusBadRequest, model.Fail("email not sent", "missing to, subject or html"))
		return
	}

	emailID, err := h.sender.Send(c.Request.Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("email not sent", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.Success("email sent", model.SendContactResult{EmailID: emailID}))
}
