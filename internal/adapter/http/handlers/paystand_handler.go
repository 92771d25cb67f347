package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "paystand_bridge/internal/adapter/http/dto/request"
	response "paystand_bridge/internal/adapter/http/dto/response"
	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase"
	"paystand_bridge/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	errInvalidRequest       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUpstreamMalformed    = pkg.NewDomainErrorSimple("UPSTREAM_MALFORMED_RESPONSE", "Unexpected response from payment platform", http.StatusBadGateway)
	errMissingAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing Authorization header", http.StatusUnauthorized)
)

type relayFunc func(ctx context.Context, authorization string, body map[string]interface{}) (usecase.ProxyReply, error)

// PaystandHandler exposes the Paystand proxy endpoints and the lookups over
// the local customer/payer mirror.
type PaystandHandler struct {
	usecase usecase.IPaystandUseCase
}

func NewPaystandHandler(uc usecase.IPaystandUseCase) *PaystandHandler {
	return &PaystandHandler{usecase: uc}
}

// ExchangeToken godoc
// @Summary      Exchange client credentials for an access token
// @Description  Relays the Paystand token response verbatim, status code included.
// @Tags         paystand
// @Accept       json
// @Produce      json
// @Param        body  body      request.TokenRequest  true  "Client credentials"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /paystand/token [post]
func (h *PaystandHandler) ExchangeToken(c *gin.Context) {
	h.relay(c, "token", &request.TokenRequest{}, func(ctx context.Context, _ string, body map[string]interface{}) (usecase.ProxyReply, error) {
		return h.usecase.ExchangeToken(ctx, body)
	})
}

// CreateCustomer godoc
// @Summary      Create a Paystand customer
// @Tags         paystand
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CustomerRequest  true  "Customer"
// @Success      200   {object}  map[string]interface{}  "customerData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /paystand/customer [post]
func (h *PaystandHandler) CreateCustomer(c *gin.Context) {
	h.relay(c, "customer", &request.CustomerRequest{}, h.usecase.CreateCustomer)
}

// DropAmounts godoc
// @Summary      Send micro-deposits to a bank account
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.DropAmountsRequest  true  "Bank"
// @Success      200   {object}  map[string]interface{}  "bankData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /dropAmounts [post]
func (h *PaystandHandler) DropAmounts(c *gin.Context) {
	h.relay(c, "drop-amounts", &request.DropAmountsRequest{}, h.usecase.DropAmounts)
}

// VerifyAmounts godoc
// @Summary      Verify micro-deposit amounts
// @Tags         banks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.VerifyAmountsRequest  true  "Amounts"
// @Success      200   {object}  map[string]interface{}  "bankData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /verifyAmounts [post]
func (h *PaystandHandler) VerifyAmounts(c *gin.Context) {
	h.relay(c, "verify-amounts", &request.VerifyAmountsRequest{}, h.usecase.VerifyAmounts)
}

// CreatePayer godoc
// @Summary      Create a payer
// @Tags         payers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.PayerRequest  true  "Payer"
// @Success      200   {object}  map[string]interface{}  "payerData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /payer [post]
func (h *PaystandHandler) CreatePayer(c *gin.Context) {
	h.relay(c, "payer", &request.PayerRequest{}, h.usecase.CreatePayer)
}

// AddPayerBank godoc
// @Summary      Attach a bank account to a payer
// @Tags         payers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.AddPayerBankRequest  true  "Bank"
// @Success      200   {object}  map[string]interface{}  "payerData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError  "PAYER_NOT_FOUND"
// @Router       /payer/addBank [post]
func (h *PaystandHandler) AddPayerBank(c *gin.Context) {
	h.relay(c, "add-bank", &request.AddPayerBankRequest{}, h.usecase.AddPayerBank)
}

// CardPayment godoc
// @Summary      Pay with a card
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CardPaymentRequest  true  "Payment"
// @Success      200   {object}  map[string]interface{}  "paymentData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /payer/cardPayment [post]
func (h *PaystandHandler) CardPayment(c *gin.Context) {
	h.relay(c, "card-payment", &request.CardPaymentRequest{}, h.usecase.CardPayment)
}

// BankPayment godoc
// @Summary      Pay from a bank account
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.BankPaymentRequest  true  "Payment"
// @Success      200   {object}  map[string]interface{}  "paymentData"
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /payer/bankPayment [post]
func (h *PaystandHandler) BankPayment(c *gin.Context) {
	h.relay(c, "bank-payment", &request.BankPaymentRequest{}, h.usecase.BankPayment)
}

// GetCustomer godoc
// @Summary      Get a mirrored customer
// @Tags         paystand
// @Produce      json
// @Security     Bearer
// @Param        customer_id  path      string  true  "Customer ID"
// @Success      200          {object}  map[string]response.CustomerResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /paystand/customer/{customer_id} [get]
func (h *PaystandHandler) GetCustomer(c *gin.Context) {
	id := c.Param("customer_id")
	customer, err := h.usecase.GetCustomer(c.Request.Context(), id)
	if err != nil {
		log.Printf("[paystand][handler] get customer failed customer_id=%s err=%v", id, err)
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Envelope(usecase.ResponseKeyCustomer, response.FromCustomer(customer)))
}

// GetPayer godoc
// @Summary      Get a mirrored payer
// @Tags         payers
// @Produce      json
// @Security     Bearer
// @Param        payer_id  path      string  true  "Payer ID"
// @Success      200       {object}  map[string]response.PayerResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /payer/{payer_id} [get]
func (h *PaystandHandler) GetPayer(c *gin.Context) {
	id := c.Param("payer_id")
	payer, err := h.usecase.GetPayer(c.Request.Context(), id)
	if err != nil {
		log.Printf("[paystand][handler] get payer failed payer_id=%s err=%v", id, err)
		appErr := mapLookupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.Envelope(usecase.ResponseKeyPayer, response.FromPayer(payer)))
}

// relay validates the body against dto, then hands the raw JSON object to
// call so fields dto does not declare still reach Paystand.
func (h *PaystandHandler) relay(c *gin.Context, name string, dto interface{}, call relayFunc) {
	if err := c.ShouldBindBodyWith(dto, binding.JSON); err != nil {
		log.Printf("[paystand][handler] %s invalid payload err=%v", name, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	var body map[string]interface{}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil || body == nil {
		log.Printf("[paystand][handler] %s payload is not an object err=%v", name, err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	reply, err := call(c.Request.Context(), c.GetHeader(AuthorizationHeader), body)
	if err != nil {
		log.Printf("[paystand][handler] %s failed err=%v", name, err)
		appErr := mapProxyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeReply(c, reply)
}

func writeReply(c *gin.Context, reply usecase.ProxyReply) {
	result := reply.Result
	switch result.Kind {
	case entities.UpstreamSuccess:
		if reply.ResponseKey == "" {
			status := result.Status
			if status == 0 {
				status = http.StatusOK
			}
			c.Data(status, "application/json; charset=utf-8", result.Raw)
			return
		}
		// Raw is the upstream body byte for byte.
		if len(result.Raw) > 0 {
			c.JSON(http.StatusOK, response.Envelope(reply.ResponseKey, result.Raw))
			return
		}
		c.JSON(http.StatusOK, response.Envelope(reply.ResponseKey, result.Payload))
	case entities.UpstreamFailure:
		c.JSON(result.Status, result.Description)
	default:
		c.JSON(errUpstreamMalformed.HTTPStatus, errUpstreamMalformed.ToHTTPError())
	}
}

func mapProxyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAuthenticationMissing):
		return errMissingAuthorization
	case errors.Is(err, usecase.ErrInvalidRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPayerNotFound):
		return pkg.NewDomainErrorSimple("PAYER_NOT_FOUND", "Payer not found", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Payment platform unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapLookupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPayerNotFound):
		return pkg.NewDomainErrorSimple("PAYER_NOT_FOUND", "Payer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
