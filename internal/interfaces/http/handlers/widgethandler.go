package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modcms/internal/application/widget"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

type WidgetHandler struct {
	composer widgetBuilder
	logger   logger.Interface
}

func NewWidgetHandler(composer widgetBuilder, log logger.Interface) *WidgetHandler {
	return &WidgetHandler{composer: composer, logger: log}
}

// GetWidget handles GET /widgets/:moduleId. An unsupported kind yields an
// empty widget rather than an error.
func (h *WidgetHandler) GetWidget(c *gin.Context) {
	moduleID, err := utils.ParseUintParam(c, "moduleId", "module")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	w, err := h.composer.Build(c.Request.Context(), widget.Request{
		ModuleID: moduleID,
		Kind:     c.DefaultQuery("kind", constants.WidgetKindList),
		Filters:  utils.ParseFilters(c),
		LoadData: utils.ParseBoolQuery(c, "load", false),
		Language: requestLanguage(c),
		Page:     utils.ParsePagination(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", w)
}
