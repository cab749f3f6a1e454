package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textloom/rephrase-api/internal/common"
	"github.com/textloom/rephrase-api/internal/httpapi/middleware"
	"github.com/textloom/rephrase-api/internal/rephrase"
)

func userIDFromContext(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// failRephrase maps service errors onto the envelope.
func failRephrase(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rephrase.ErrSessionNotFound),
		errors.Is(err, rephrase.ErrVariantNotFound):
		common.Fail(c, http.StatusNotFound, common.CodeNotFound, err.Error())
	case rephrase.IsValidation(err):
		common.Fail(c, http.StatusBadRequest, common.CodeValidationFailed, err.Error())
	default:
		common.Fail(c, http.StatusInternalServerError, common.CodeInternal, "internal error")
	}
}

type createSessionReq struct {
	Language     *string `json:"language"`
	Context      *string `json:"context"`
	OriginalText string  `json:"original_text" binding:"required"`
}

func (h *Handler) CreateRephraseSession(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, common.CodeValidationFailed, "original_text is required")
		return
	}

	sess, err := h.RephraseSvc.CreateSession(c.Request.Context(), uid, rephrase.CreateSessionInput{
		Language:     req.Language,
		Context:      req.Context,
		OriginalText: req.OriginalText,
	})
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, gin.H{"session": sess})
}

type updateSessionReq struct {
	Language     *string `json:"language"`
	Context      *string `json:"context"`
	OriginalText *string `json:"original_text"`
}

func (h *Handler) UpdateRephraseSession(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	var req updateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, common.CodeValidationFailed, "invalid json")
		return
	}

	sess, err := h.RephraseSvc.UpdateSession(c.Request.Context(), uid, c.Param("session_id"), rephrase.UpdateSessionInput{
		Language:     req.Language,
		Context:      req.Context,
		OriginalText: req.OriginalText,
	})
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, gin.H{"session": sess})
}

func (h *Handler) ListRephraseSessions(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	sessions, err := h.RephraseSvc.ListSessions(c.Request.Context(), uid)
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, gin.H{
		"items": sessions,
		"total": len(sessions),
	})
}

type createVariantReq struct {
	Tone         *string `json:"tone"`
	Complexity   *string `json:"complexity"`
	VariantLabel *string `json:"variant_label"`
	Content      string  `json:"content" binding:"required"`
	IsFavorite   *bool   `json:"is_favorite"`
}

func (h *Handler) CreateRephraseVariant(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	var req createVariantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, common.CodeValidationFailed, "content is required")
		return
	}

	variant, err := h.RephraseSvc.CreateVariant(c.Request.Context(), uid, c.Param("session_id"), rephrase.CreateVariantInput{
		Tone:         req.Tone,
		Complexity:   req.Complexity,
		VariantLabel: req.VariantLabel,
		Content:      req.Content,
		IsFavorite:   req.IsFavorite,
	})
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, gin.H{"variant": variant})
}

type updateVariantReq struct {
	Tone         *string `json:"tone"`
	Complexity   *string `json:"complexity"`
	VariantLabel *string `json:"variant_label"`
	Content      *string `json:"content"`
	IsFavorite   *bool   `json:"is_favorite"`
}

func (h *Handler) UpdateRephraseVariant(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	var req updateVariantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, common.CodeValidationFailed, "invalid json")
		return
	}

	variant, err := h.RephraseSvc.UpdateVariant(c.Request.Context(), uid,
		c.Param("session_id"), c.Param("variant_id"),
		rephrase.UpdateVariantInput{
			Tone:         req.Tone,
			Complexity:   req.Complexity,
			VariantLabel: req.VariantLabel,
			Content:      req.Content,
			IsFavorite:   req.IsFavorite,
		})
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, gin.H{"variant": variant})
}

func (h *Handler) DeleteRephraseVariant(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	err := h.RephraseSvc.DeleteVariant(c.Request.Context(), uid,
		c.Param("session_id"), c.Param("variant_id"))
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, nil)
}

func (h *Handler) ListRephraseVariants(c *gin.Context) {
	uid, okk := userIDFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, common.CodeUnauthorized, "unauthorized")
		return
	}

	favoritesOnly := c.Query("favorites_only") == "true"

	variants, err := h.RephraseSvc.ListVariants(c.Request.Context(), uid,
		c.Param("session_id"), favoritesOnly)
	if err != nil {
		failRephrase(c, err)
		return
	}

	common.OK(c, gin.H{
		"items": variants,
		"total": len(variants),
	})
}
