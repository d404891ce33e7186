package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdto "modcms/internal/application/catalog/dto"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

type ModuleHandler struct {
	service moduleService
	logger  logger.Interface
}

func NewModuleHandler(service moduleService, log logger.Interface) *ModuleHandler {
	return &ModuleHandler{service: service, logger: log}
}

func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req catalogdto.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create module", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.service.CreateModule(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Module created successfully")
}

func (h *ModuleHandler) ListModules(c *gin.Context) {
	var req catalogdto.ListModulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.service.ListModules(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "module")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetModule(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "module")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req catalogdto.UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update module", "id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.service.UpdateModule(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Module updated successfully", result)
}

func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "module")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteModule(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Module deleted successfully", nil)
}
