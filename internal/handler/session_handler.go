package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/service"
)

// RequestAuthorization implements api.ServerInterface.
func (h *Handler) RequestAuthorization(w http.ResponseWriter, r *http.Request, platform string) {
	var req api.AuthorizationRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "phone_number is required")
		return
	}

	res, err := h.service.Auth.RequestAuthorization(r.Context(), platform, req.PhoneNumber)
	if err != nil {
		h.handleError(w, r, err, "Failed to request authorization")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toSessionResponse(res))
}

// SubmitCode implements api.ServerInterface.
func (h *Handler) SubmitCode(w http.ResponseWriter, r *http.Request, platform string, phone string) {
	var req api.CodeRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "code is required")
		return
	}

	res, err := h.service.Auth.SubmitCode(r.Context(), platform, phone, strings.TrimSpace(req.Code))
	if err != nil {
		h.handleError(w, r, err, "Failed to validate code")
		return
	}

	render.JSON(w, r, toSessionResponse(res))
}

// SubmitSecondFactor implements api.ServerInterface.
func (h *Handler) SubmitSecondFactor(w http.ResponseWriter, r *http.Request, platform string, phone string) {
	var req api.PasswordRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Password == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "password is required")
		return
	}

	res, err := h.service.Auth.SubmitSecondFactor(r.Context(), platform, phone, req.Password)
	if err != nil {
		h.handleError(w, r, err, "Failed to validate password")
		return
	}

	render.JSON(w, r, toSessionResponse(res))
}

// InvalidateSession implements api.ServerInterface.
func (h *Handler) InvalidateSession(w http.ResponseWriter, r *http.Request, platform string, phone string) {
	res, err := h.service.Auth.Invalidate(r.Context(), platform, phone)
	if err != nil {
		h.handleError(w, r, err, "Failed to invalidate session")
		return
	}

	render.JSON(w, r, toSessionResponse(res))
}

// SendMessage implements api.ServerInterface.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, platform string, phone string) {
	var req api.SendMessageRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Recipient) == "" || req.Message == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidRequest, "recipient and message are required")
		return
	}

	res, err := h.service.Auth.SendMessage(r.Context(), platform, phone, req.Recipient, req.Message)
	if err != nil {
		h.handleError(w, r, err, "Failed to send message")
		return
	}

	render.JSON(w, r, toSessionResponse(res))
}

func toSessionResponse(res *service.SessionResult) api.SessionResponse {
	sessionID := res.SessionID
	resp := api.SessionResponse{
		Message:     res.Message,
		PhoneNumber: res.PhoneNumber,
		Platform:    res.Platform,
		SessionId:   &sessionID,
		State:       api.SessionState(res.State),
	}
	if res.SecondFactorRequired {
		enabled := true
		resp.TwoStepVerificationEnabled = &enabled
	}
	return resp
}
