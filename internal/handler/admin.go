package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifeline-salud/backend/internal/model"
	"github.com/lifeline-salud/backend/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// DeleteAllContent godoc
// @Summary Wipe every table's content
// @Tags admin
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /admin/delete-all-content [post]
func (h *AdminHandler) DeleteAllContent(c *gin.Context) {
	if err := h.svc.DeleteAllContent(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("content deletion failed", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.Success("all content deleted from every table", nil))
}

// DropAllTables godoc
// @Summary Drop every table and view
// @Tags admin
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /admin/drop-all-tables [post]
func (h *AdminHandler) DropAllTables(c *gin.Context) {
	if err := h.svc.DropAllTables(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("table drop failed", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.Success("all tables and views dropped", nil))
}

// DropAllProcedures godoc
// @Summary Drop every stored procedure
// @Tags admin
// @Produce json
// @Success 200 {object} model.APIResponse
// @Failure 500 {object} model.APIResponse
// @Router /admin/drop-all-procedures [post]
func (h *AdminHandler) DropAllProcedures(c *gin.Context) {
	if err := h.svc.DropAllProcedures(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, model.Fail("procedure drop failed", err.Error()))
		return
	}
	c.JSON(http.StatusOK, model.Success("all stored procedures dropped", nil))
}
