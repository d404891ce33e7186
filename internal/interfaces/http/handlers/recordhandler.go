package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"modcms/internal/application/records"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

// RecordHandler exposes the dynamic record store under a module code.
type RecordHandler struct {
	store  recordStore
	logger logger.Interface
}

func NewRecordHandler(store recordStore, log logger.Interface) *RecordHandler {
	return &RecordHandler{store: store, logger: log}
}

// ListRecords handles GET /modules/:code/records
func (h *RecordHandler) ListRecords(c *gin.Context) {
	code := c.Param("code")

	page, err := h.store.List(c.Request.Context(), code, listOptions(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// GetRecord handles GET /modules/:code/records/:id
func (h *RecordHandler) GetRecord(c *gin.Context) {
	code := c.Param("code")
	id, err := parseRecordID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rec, err := h.store.Get(c.Request.Context(), code, id, listOptions(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", rec)
}

// CreateRecord handles POST /modules/:code/records
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	code := c.Param("code")

	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		h.logger.Warnw("invalid record body", "module", code, "error", err)
		utils.ErrorResponseWithError(c, errors.New(errors.KindInvalidRequest, "request body must be a JSON object", err.Error()))
		return
	}

	rec, err := h.store.Create(c.Request.Context(), code, attrs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, rec, "Record created successfully")
}

// UpdateRecord handles PUT and PATCH /modules/:code/records/:id. Only the
// submitted attributes change.
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	code := c.Param("code")
	id, err := parseRecordID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var attrs map[string]any
	if err := c.ShouldBindJSON(&attrs); err != nil {
		h.logger.Warnw("invalid record body", "module", code, "id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.New(errors.KindInvalidRequest, "request body must be a JSON object", err.Error()))
		return
	}

	rec, err := h.store.Update(c.Request.Context(), code, id, attrs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Record updated successfully", rec)
}

// DeleteRecord handles DELETE /modules/:code/records/:id
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	code := c.Param("code")
	id, err := parseRecordID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.store.Delete(c.Request.Context(), code, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Record deleted successfully", nil)
}

func parseRecordID(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("invalid record id", raw)
	}
	return id, nil
}

func listOptions(c *gin.Context) records.ListOptions {
	return records.ListOptions{
		Filters:        utils.ParseFilters(c),
		Page:           utils.ParsePagination(c),
		Language:       requestLanguage(c),
		EmbedMedia:     utils.ParseBoolQuery(c, "embed", true),
		RenderRichText: utils.ParseBoolQuery(c, "render", true),
	}
}

// requestLanguage prefers the lang query parameter over Accept-Language.
func requestLanguage(c *gin.Context) string {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return lang
	}
	return c.GetHeader(constants.HeaderAcceptLanguage)
}
