package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"plusone/internal/core"
	"plusone/internal/http/handler/middleware"
	"plusone/internal/http/payload"
	"plusone/internal/identity"
	"plusone/internal/repository"

	"go.uber.org/zap"
)

var (
	Register          = "POST /wallet/register"
	Logout            = "POST /wallet/logout"
	GetProfile        = "GET /wallet/profile"
	GetDashboard      = "GET /wallet/dashboard"
	UpdateBalance     = "PUT /wallet/balance"
	GetTransactions   = "GET /wallet/transactions"
	CreateTransaction = "POST /wallet/transactions"
	SettleTransaction = "POST /wallet/transactions/{id}/settle"
	ResolveReferral   = "GET /wallet/referral/{code}"
)

const authTokenHeader = "AUTH_TOKEN"

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
	}
}

func (h *WalletHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var regPayload payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &regPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	session, err := h.wallet.Register(r.Context(), regPayload.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, identity.ErrNotReady):
			// transient, the client should retry once the provider is up
			httpCode = http.StatusServiceUnavailable
			resp.Error = identity.ErrNotReady.Error()
		case errors.Is(err, identity.ErrAuth):
			httpCode = http.StatusUnauthorized
			resp.Error = identity.ErrAuth.Error()
		case errors.Is(err, core.ErrReferralCodeNotFound):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, core.ErrValidation):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.logs.Infow("profile session issued",
		"profile_id", session.Profile.ID,
		"handler", Register,
		"request_id", requestId)

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respondMissingToken(w, Logout, requestId)
		return
	}

	if err := h.wallet.Logout(r.Context(), authToken); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, identity.ErrNotReady) {
			code = http.StatusServiceUnavailable
		} else if errors.Is(err, core.ErrSessionNotValid) {
			code = http.StatusUnauthorized
		}
		h.respond(w, Response{
			Message: "Logout failed",
			Error:   err.Error(),
		}, code, requestId)
		h.logs.Errorw("logout failed", "error", err, "handler", Logout, "request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Logged out"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respondMissingToken(w, GetProfile, requestId)
		return
	}

	profile, err := h.wallet.Profile(r.Context(), authToken)
	if err != nil {
		h.respondSessionError(w, err, "Could not retrieve profile", GetProfile, requestId)
		return
	}

	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respondMissingToken(w, GetDashboard, requestId)
		return
	}

	dashboard, err := h.wallet.Dashboard(r.Context(), authToken)
	if err != nil {
		h.respondSessionError(w, err, "Could not retrieve dashboard", GetDashboard, requestId)
		return
	}

	h.respond(w, dashboard, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleUpdateBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respondMissingToken(w, UpdateBalance, requestId)
		return
	}

	var balancePayload payload.UpdateBalanceRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &balancePayload); err != nil {
		h.respond(w, Response{
			Message: "Could not update balance",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateBalance,
			"request_id", requestId)
		return
	}

	profile, err := h.wallet.UpdateBalance(r.Context(), authToken, balancePayload.Balance)
	if err != nil {
		h.respondSessionError(w, err, "Could not update balance", UpdateBalance, requestId)
		return
	}

	h.respond(w, profile, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respondMissingToken(w, GetTransactions, requestId)
		return
	}

	transactions, err := h.wallet.Transactions(r.Context(), authToken)
	if err != nil {
		h.respondSessionError(w, err, "Could not retrieve transactions", GetTransactions, requestId)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var txPayload payload.CreateTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &txPayload); err != nil {
		h.respond(w, Response{
			Message: "Could not create transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	transaction, err := h.wallet.CreateTransaction(r.Context(), txPayload.ToMessage())
	if err != nil {
		resp := Response{Message: "Could not create transaction"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrValidation):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		case errors.Is(err, repository.ErrProfileNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to create transaction",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, transaction, http.StatusCreated, requestId)
}

func (h *WalletHandler) HandleSettleTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	transactionID := r.PathValue("id")
	if transactionID == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "transaction id parameter is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	var settlePayload payload.SettleTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &settlePayload); err != nil {
		h.respond(w, Response{
			Message: "Could not settle transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SettleTransaction,
			"request_id", requestId)
		return
	}

	err := h.wallet.SettleTransaction(r.Context(), settlePayload.ToMessage(transactionID))
	if err != nil {
		resp := Response{Message: "Could not settle transaction"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, repository.ErrTransactionNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, repository.ErrTerminalStatus), errors.Is(err, repository.ErrHashConflict):
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		case errors.Is(err, core.ErrValidation):
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to settle transaction",
			"error", err,
			"transaction_id", transactionID,
			"handler", SettleTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Transaction settled"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleResolveReferral(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	code := r.PathValue("code")
	if code == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "referral code parameter is required",
		}, http.StatusBadRequest,
			requestId)
		return
	}

	referrer, err := h.wallet.ResolveReferralCode(r.Context(), code)
	if err != nil {
		resp := Response{Message: "Could not resolve referral code"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrReferralCodeNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to resolve referral code",
			"error", err,
			"handler", ResolveReferral,
			"request_id", requestId)
		return
	}

	h.respond(w, referrer, http.StatusOK, requestId)
}

func (h *WalletHandler) respondSessionError(w http.ResponseWriter, err error, message, route, requestId string) {
	resp := Response{Message: message}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrSessionNotValid):
		httpCode = http.StatusUnauthorized
		resp.Error = core.ErrSessionNotValid.Error()
	case errors.Is(err, repository.ErrProfileNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrValidation):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *WalletHandler) respondMissingToken(w http.ResponseWriter, route, requestId string) {
	h.respond(w, Response{
		Message: "Authentication failed",
		Error:   authTokenHeader + " header is required",
	}, http.StatusUnauthorized,
		requestId)
	h.logs.Errorw("missing auth token header", "handler", route, "request_id", requestId)
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
