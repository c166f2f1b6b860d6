package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/models"
)

// ListGatewayClients implements api.ServerInterface.
func (h *Handler) ListGatewayClients(w http.ResponseWriter, r *http.Request, params api.ListGatewayClientsParams) {
	filter := models.GatewayClientFilter{MinReliability: params.MinReliability}
	if params.Country != nil {
		filter.Country = *params.Country
	}
	if params.Protocol != nil {
		filter.Protocol = *params.Protocol
	}

	clients, err := h.service.Gateway.ListClients(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err, "Failed to list gateway clients")
		return
	}

	resp := api.GatewayClientList{
		Clients: make([]api.GatewayClient, 0, len(clients)),
		Total:   len(clients),
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, toGatewayClient(c))
	}

	render.JSON(w, r, resp)
}

// RegisterGatewayClient implements api.ServerInterface.
func (h *Handler) RegisterGatewayClient(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterGatewayClientRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	client := &models.GatewayClient{
		MSISDN:       req.Msisdn,
		Country:      req.Country,
		Operator:     req.Operator,
		OperatorCode: req.OperatorCode,
	}
	if req.Protocols != nil {
		client.Protocols = *req.Protocols
	}

	created, err := h.service.Gateway.RegisterClient(r.Context(), client)
	if err != nil {
		h.handleError(w, r, err, "Failed to register gateway client")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toGatewayClient(created))
}

// GetGatewayClient implements api.ServerInterface.
func (h *Handler) GetGatewayClient(w http.ResponseWriter, r *http.Request, msisdn string) {
	client, err := h.service.Gateway.GetClient(r.Context(), msisdn)
	if err != nil {
		h.handleError(w, r, err, "Failed to get gateway client")
		return
	}

	render.JSON(w, r, toGatewayClient(client))
}

// UpdateGatewayClient implements api.ServerInterface.
func (h *Handler) UpdateGatewayClient(w http.ResponseWriter, r *http.Request, msisdn string) {
	var req api.UpdateGatewayClientRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	update := models.GatewayClientUpdate{
		Country:      req.Country,
		Operator:     req.Operator,
		OperatorCode: req.OperatorCode,
	}
	if req.Protocols != nil {
		update.Protocols = *req.Protocols
	}

	client, err := h.service.Gateway.UpdateClient(r.Context(), msisdn, update)
	if err != nil {
		h.handleError(w, r, err, "Failed to update gateway client")
		return
	}

	render.JSON(w, r, toGatewayClient(client))
}

// RecomputeGatewayClientScore implements api.ServerInterface.
func (h *Handler) RecomputeGatewayClientScore(w http.ResponseWriter, r *http.Request, msisdn string) {
	client, err := h.service.Gateway.RecomputeScore(r.Context(), msisdn)
	if err != nil {
		h.handleError(w, r, err, "Failed to recompute reliability score")
		return
	}

	render.JSON(w, r, toGatewayClient(client))
}

func toGatewayClient(c *models.GatewayClient) api.GatewayClient {
	protocols := make([]string, len(c.Protocols))
	copy(protocols, c.Protocols)

	resp := api.GatewayClient{
		Country:      c.Country,
		CreatedAt:    c.CreatedAt,
		Msisdn:       c.MSISDN,
		Operator:     c.Operator,
		OperatorCode: c.OperatorCode,
		Protocols:    protocols,
		Reliability:  c.Reliability,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.LastPublishedAt.Valid {
		t := c.LastPublishedAt.Time
		resp.LastPublishedDate = &t
	}
	return resp
}
