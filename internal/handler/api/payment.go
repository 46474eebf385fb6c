package api

import (
	"errors"
	"net/http"

	reqdto "rentradar/internal/handler/dto/request"
	resdto "rentradar/internal/handler/dto/response"
	"rentradar/internal/handler/httperr"
	"rentradar/internal/handler/middleware"
	"rentradar/internal/pkg/errs"
	"rentradar/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Authorize payment
// @Description Place a simulated hold for a booking's total
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AuthorizePaymentRequest true "Authorization request"
// @Success 200 {object} resdto.PaymentAuthorizationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/authorize [post]
func (h *PaymentHandler) Authorize(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.AuthorizePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	auth, err := h.paymentCommands.Authorize(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrNotRenter):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the renter can authorize payment", nil)
		case errors.Is(err, commands.ErrBookingNotPayable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not awaiting payment", nil)
		case errors.Is(err, commands.ErrAuthorizationFail):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment authorization failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentAuthorization(auth))
}
