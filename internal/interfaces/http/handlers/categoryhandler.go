package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modcms/internal/application/catalog"
	catalogdto "modcms/internal/application/catalog/dto"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

// CategoryHandler serves module categories, their column definitions and
// catalog imports.
type CategoryHandler struct {
	service categoryService
	logger  logger.Interface
}

func NewCategoryHandler(service categoryService, log logger.Interface) *CategoryHandler {
	return &CategoryHandler{service: service, logger: log}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req catalogdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *CategoryHandler) AddColumn(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req catalogdto.AddColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add column", "category_id", categoryID, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.service.AddColumnDefinition(c.Request.Context(), categoryID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Column definition added successfully")
}

func (h *CategoryHandler) ListColumns(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListColumnDefinitions(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) RemoveColumn(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	columnID, err := utils.ParseUintParam(c, "columnId", "column")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveColumnDefinition(c.Request.Context(), categoryID, columnID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Column definition removed successfully", nil)
}

// ImportCatalog applies a YAML catalog document from the request body.
func (h *CategoryHandler) ImportCatalog(c *gin.Context) {
	doc, err := catalog.ParseCatalog(c.Request.Body)
	if err != nil {
		h.logger.Warnw("invalid catalog document", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	report, err := h.service.ImportCatalog(c.Request.Context(), doc)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Catalog imported", report)
}
