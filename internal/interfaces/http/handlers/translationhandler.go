package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

// TranslationResponse is the resolved text of a language code.
type TranslationResponse struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
	Text     string `json:"text"`
}

type TranslationHandler struct {
	resolver textResolver
	logger   logger.Interface
}

func NewTranslationHandler(resolver textResolver, log logger.Interface) *TranslationHandler {
	return &TranslationHandler{resolver: resolver, logger: log}
}

// ResolveCode handles GET /translations/:code. A missing translation
// resolves to an empty text.
func (h *TranslationHandler) ResolveCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("language code is required"))
		return
	}

	ctx := c.Request.Context()
	lang, err := h.resolver.MatchLanguage(ctx, requestLanguage(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := TranslationResponse{Code: code}
	var languageID uint
	if lang != nil {
		languageID = lang.ID()
		resp.Language = lang.Code()
	}

	resp.Text, err = h.resolver.Resolve(ctx, code, languageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
