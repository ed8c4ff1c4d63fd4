package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifeline-salud/backend/internal/model"
	"github.com/lifeline-salud/backend/internal/service"
)

type SubscriptionHandler struct {
	svc *service.SubscriptionService
}

func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// CreateType godoc
// @Summary Create a classification type
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body model.CreateTypeRequest true "Type payload"
// @Success 201 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /type [post]
func (h *SubscriptionHandler) CreateType(c *gin.Context) {
	var req model.CreateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Fail("type creation failed", "invalid request body"))
		return
	}

	record, err := h.svc.CreateType(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("type creation failed", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.Success("type created", record))
}

// CreateSubscription godoc
// @Summary Create a subscription plan
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body model.CreateSubscriptionRequest true "Subscription payload"
// @Success 201 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /subscription [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req model.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Fail("subscription creation failed", "invalid request body"))
		return
	}

	sub, err := h.svc.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("subscription creation failed", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.Success("subscription created", sub))
}
