package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/request"
	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/response"
	"github.com/contestcorner/contest-corner-api/internal/domain"
	"github.com/contestcorner/contest-corner-api/internal/service"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	RecordPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	GetByUserEmail(ctx context.Context, email string) ([]domain.Payment, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleCreatePaymentIntent godoc
// @Summary      Open a pending charge with the payment gateway
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreatePaymentIntentRequest true "request body"
// @Success      200      {object}   response.PaymentIntentResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /create-payment-intent [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleCreatePaymentIntent(ctx *gin.Context) {
	req := request.CreatePaymentIntentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	clientSecret, err := h.svc.CreatePaymentIntent(ctx.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePaymentIntent -> h.svc.CreatePaymentIntent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.PaymentIntentResponse{ClientSecret: clientSecret})
}

// HandleCreatePayment godoc
// @Summary      Record a confirmed payment
// @Description  Persists the payment and increments the contest's participation counter.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreatePaymentRequest true "request body"
// @Success      201      {object}   domain.Payment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleCreatePayment(ctx *gin.Context) {
	req := request.CreatePaymentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	payment, err := h.svc.RecordPayment(ctx.Request.Context(), domain.Payment{
		ContestID:     req.ContestID,
		UserEmail:     req.UserEmail,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		if errors.Is(err, service.ErrContestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("contest", "ID", req.ContestID))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePayment -> h.svc.RecordPayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleUserPayments godoc
// @Summary      List a user's payments
// @Tags         payments
// @Produce      json
// @Param        email path       string true "user email"
// @Success      200   {array}    domain.Payment
// @Failure      401   {object}   response.Err
// @Failure      500   {object}   response.Err
// @Router       /payments/{email} [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleUserPayments(ctx *gin.Context) {
	email := ctx.Param("email")

	payments, err := h.svc.GetByUserEmail(ctx.Request.Context(), email)
	if err != nil {
		err = fmt.Errorf("v1.HandleUserPayments -> h.svc.GetByUserEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, payments)
}
