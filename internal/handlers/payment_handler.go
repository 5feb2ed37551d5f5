package handlers

import (
	"net/http"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PaymentHandler handles the received payment endpoints
type PaymentHandler struct {
	paymentService services.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService services.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPayment records money received from a client, optionally earmarked
// for one player on the roster
//
// Method: POST /api/v1/payments
// Authentication: Required (admin)
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	payment, err := h.paymentService.RecordPayment(paymentInputFromRequest(req))
	if err != nil {
		return sendPaymentError(c, err, errors.ClientNotFound)
	}

	return c.JSON(http.StatusCreated, payment)
}

// GetPayment returns one recorded payment
//
// Method: GET /api/v1/payments/:paymentId
// Authentication: Required
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID, err := parseIDParam(c, "paymentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid payment ID"))
	}

	payment, err := h.paymentService.GetPayment(paymentID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.PaymentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, payment)
}

// ListPayments returns a page of payments, optionally for one client
//
// Method: GET /api/v1/payments
// Authentication: Required (admin)
//
// Query parameters:
//   - client_id: Restrict to one client's payments
//   - limit: Page size (default 50)
//   - offset: Page offset
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	var req dto.ListPaymentsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	var clientID *uuid.UUID
	if req.ClientID != "" {
		parsed, err := uuid.Parse(req.ClientID)
		if err != nil {
			return SendError(c, errors.ClientInvalidID)
		}
		clientID = &parsed
	}

	if req.Limit == 0 {
		req.Limit = 50
	}

	payments, total, err := h.paymentService.ListPayments(clientID, req.Offset, req.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments: payments,
		Total:    total,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
}

// UpdatePayment amends a recorded payment, including its earmark
//
// Method: PUT /api/v1/payments/:paymentId
// Authentication: Required (admin)
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	paymentID, err := parseIDParam(c, "paymentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid payment ID"))
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	payment, err := h.paymentService.UpdatePayment(paymentID, paymentInputFromRequest(req))
	if err != nil {
		return sendPaymentError(c, err, errors.PaymentNotFound)
	}

	return c.JSON(http.StatusOK, payment)
}

// DeletePayment removes a recorded payment
//
// Method: DELETE /api/v1/payments/:paymentId
// Authentication: Required (admin)
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	paymentID, err := parseIDParam(c, "paymentId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid payment ID"))
	}

	if err := h.paymentService.DeletePayment(paymentID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.PaymentNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Payment deleted"})
}

func paymentInputFromRequest(req dto.PaymentRequest) services.PaymentInput {
	return services.PaymentInput{
		ClientID:  req.ClientID,
		Date:      req.Date,
		Amount:    req.Amount,
		Reference: req.Reference,
		PlayerID:  req.PlayerID,
		ProofURL:  req.ProofURL,
	}
}

// sendPaymentError maps payment service errors onto API error codes.
// notFoundCode distinguishes a missing client on create from a missing
// payment on amend.
func sendPaymentError(c echo.Context, err error, notFoundCode errors.ErrorCode) error {
	switch err {
	case services.ErrNotFound:
		return SendError(c, notFoundCode)
	case services.ErrInvalidDate:
		return SendError(c, errors.ValidationInvalidDate)
	case services.ErrInvalidAmount:
		return SendError(c, errors.PaymentInvalidAmount)
	case services.ErrPlayerNotLinked:
		return SendError(c, errors.PlayerNotOfClient)
	default:
		return SendSystemError(c, err)
	}
}
