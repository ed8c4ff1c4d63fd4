package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lifeline-salud/backend/internal/db"
	"github.com/lifeline-salud/backend/internal/model"
	"github.com/lifeline-salud/backend/internal/service"
)

type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// CreateInventory godoc
// @Summary Create a questionnaire
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body model.CreateInventoryRequest true "Inventory payload"
// @Success 201 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var req model.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Fail("inventory creation failed", "invalid request body"))
		return
	}

	inv, err := h.svc.CreateInventory(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("inventory creation failed", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.Success("inventory created", inv))
}

// GetInventoryDetails godoc
// @Summary Get one questionnaire
// @Tags inventory
// @Produce json
// @Param inventoryId path int true "Inventory id"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 404 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /inventory/{inventoryId} [get]
func (h *InventoryHandler) GetInventoryDetails(c *gin.Context) {
	inventoryID, ok := pathID(c, "inventoryId")
	if !ok {
		return
	}

	inv, err := h.svc.GetInventoryDetails(c.Request.Context(), inventoryID)
	if err != nil {
		if db.IsNoRows(err) {
			c.JSON(http.StatusNotFound, model.Fail("inventory not found", "no inventory matches the given id"))
			return
		}
		c.JSON(http.StatusInternalServerError, model.Fail("inventory lookup failed", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.Success("inventory details retrieved", inv))
}

// GetInventories godoc
// @Summary List questionnaires
// @Tags inventory
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /inventories [get]
func (h *InventoryHandler) GetInventories(c *gin.Context) {
	list, err := h.svc.GetInventories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("inventory listing failed", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.Success("inventories retrieved", list))
}

// CreateInventoryResponse godoc
// @Summary Record a filled-in questionnaire
// @Tags inventory
// @Accept json
// @Produce json
// @Param inventoryId path int true "Inventory id"
// @Param request body model.CreateInventoryResponseRequest true "Response payload"
// @Success 201 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /inventory/{inventoryId}/response [post]
func (h *InventoryHandler) CreateInventoryResponse(c *gin.Context) {
	inventoryID, ok := pathID(c, "inventoryId")
	if !ok {
		return
	}

	var req model.CreateInventoryResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Fail("inventory response creation failed", "invalid request body"))
		return
	}

	res, err := h.svc.CreateInventoryResponse(c.Request.Context(), inventoryID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("inventory response creation failed", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, model.Success("inventory response created", res))
}

// GetInventoryResponses godoc
// @Summary Get responses by response id
// @Tags inventory
// @Produce json
// @Param inventoryId path int true "Response id (legacy route shape)"
// @Success 200 {object} model.APIResponse
// @Failure 400 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /inventory/{inventoryId}/responses [get]
func (h *InventoryHandler) GetInventoryResponses(c *gin.Context) {
	// The segment carries a response id despite its name.
	responseID, ok := pathID(c, "inventoryId")
	if !ok {
		return
	}

	list, err := h.svc.GetInventoryResponses(c.Request.Context(), responseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("inventory response lookup failed", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.Success("inventory responses retrieved", list))
}

// GetAllInventoryResponses godoc
// @Summary List every recorded response
// @Tags inventory
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /inventory-responses [get]
func (h *InventoryHandler) GetAllInventoryResponses(c *gin.Context) {
	list, err := h.svc.GetAllInventoryResponses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("inventory response listing failed", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.Success("all inventory responses retrieved", list))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Fail("invalid path parameter", name+" must be a number"))
		return 0, false
	}
	return id, true
}
