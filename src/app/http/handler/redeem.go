package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"worldofml/src/app/http/dto"
	"worldofml/src/app/http/response"
	"worldofml/src/app/middleware"
	"worldofml/src/core/usecase"
)

// RedeemHandler handles hardware redemption endpoints.
type RedeemHandler struct {
	redemptions *usecase.RedemptionService
}

func NewRedeemHandler(redemptions *usecase.RedemptionService) *RedeemHandler {
	return &RedeemHandler{redemptions: redemptions}
}

// Overview returns existing requests plus the current eligibility checklist.
// GET /api/redeem/request
func (h *RedeemHandler) Overview(c *gin.Context) {
	overview, err := h.redemptions.Overview(c.Request.Context(), learnerID(c))
	if err != nil {
		c.Error(err)
		response.InternalError(c,
			"Could not load redemption data.",
			"Refresh and try again.",
			middleware.GetRequestID(c),
		)
		return
	}
	response.OK(c, overview)
}

// Create files a redemption request when all eligibility gates pass.
// POST /api/redeem/request
func (h *RedeemHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.RedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c,
			"Missing redemption fields.",
			"Required: shippingName, email, country. Optional: notes.",
			requestID,
		)
		return
	}

	result, err := h.redemptions.Create(c.Request.Context(), learnerID(c), usecase.RedemptionInput{
		ShippingName: strings.TrimSpace(req.ShippingName),
		Email:        strings.TrimSpace(req.Email),
		Country:      strings.TrimSpace(req.Country),
		Notes:        strings.TrimSpace(req.Notes),
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err,
			"Complete lessons, hours, metrics, and rubric approval first.",
			requestID,
		)
		return
	}
	response.Created(c, result)
}
