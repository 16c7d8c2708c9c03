package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "tipjar/internal/errors"
	"tipjar/internal/models"
	"tipjar/internal/services"
)

// TipPageHandler handles tip page requests
type TipPageHandler struct {
	tipPageService services.TipPageServicer
}

// NewTipPageHandler creates a new TipPageHandler
func NewTipPageHandler(tipPageService services.TipPageServicer) *TipPageHandler {
	return &TipPageHandler{tipPageService: tipPageService}
}

// CreateTipPageRequest represents the request payload for creating a tip page
type CreateTipPageRequest struct {
	DisplayName    string                `json:"displayName" binding:"required,notblank"`
	Message        string                `json:"message"`
	PaymentMethods models.PaymentMethods `json:"paymentMethods" binding:"required,min=1"`
}

// Create handles POST /api/create-tip-page. On success the only thing the
// creator gets back is the token; the page itself is fetched by whoever
// holds the link.
func (h *TipPageHandler) Create(c *gin.Context) {
	var req CreateTipPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidData, err))
		return
	}

	tok, err := h.tipPageService.CreateTipPage(models.TipPageInput{
		DisplayName:    req.DisplayName,
		Message:        req.Message,
		PaymentMethods: req.PaymentMethods,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tok,
	})
}

// Get handles GET /api/tip/*token. The route is a wildcard so an empty
// token segment reaches the handler and gets the "Token required" response
// instead of a router 404. The response carries exactly the public fields of
// the record, never the token or timestamp.
func (h *TipPageHandler) Get(c *gin.Context) {
	tok := strings.TrimPrefix(c.Param("token"), "/")
	if tok == "" {
		respondWithError(c, apperrors.ErrTokenRequired)
		return
	}

	page, err := h.tipPageService.GetTipPage(tok)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"displayName":    page.DisplayName,
		"message":        page.Message,
		"paymentMethods": page.PaymentMethods,
	})
}
