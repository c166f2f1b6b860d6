package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/reliability"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

// gatewayService adds gateway client administration on top of the reliability
// tracker, which owns tests and scores.
type gatewayService struct {
	*reliability.Tracker
	clients repository.GatewayClientRepository
	logger  *zap.Logger
}

func NewGatewayService(repo repository.Repository, tracker *reliability.Tracker, logger *zap.Logger) GatewayService {
	return &gatewayService{
		Tracker: tracker,
		clients: repo.GatewayClient(),
		logger:  logger,
	}
}

func (s *gatewayService) RegisterClient(ctx context.Context, client *models.GatewayClient) (*models.GatewayClient, error) {
	phone, err := models.NormalizePhoneNumber(client.MSISDN)
	if err != nil {
		return nil, fmt.Errorf("%w: msisdn: %v", ErrInvalidGatewayClient, err)
	}
	if strings.TrimSpace(client.Country) == "" {
		return nil, fmt.Errorf("%w: country is required", ErrInvalidGatewayClient)
	}

	client.MSISDN = phone.String()
	client.Protocols = normalizeProtocols(client.Protocols)

	if err := s.clients.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", ErrGatewayClientExists, client.MSISDN)
		}
		return nil, fmt.Errorf("failed to register gateway client: %w", err)
	}

	s.logger.Info("Gateway client registered",
		zap.String("msisdn", client.MSISDN),
		zap.String("country", client.Country),
	)

	return client, nil
}

func (s *gatewayService) UpdateClient(ctx context.Context, msisdn string, update models.GatewayClientUpdate) (*models.GatewayClient, error) {
	phone, err := models.NormalizePhoneNumber(msisdn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", reliability.ErrUnknownGatewayClient, msisdn)
	}
	if update.Country != nil && strings.TrimSpace(*update.Country) == "" {
		return nil, fmt.Errorf("%w: country must not be empty", ErrInvalidGatewayClient)
	}
	if update.Protocols != nil {
		update.Protocols = normalizeProtocols(update.Protocols)
	}

	client, err := s.clients.Update(ctx, phone.String(), update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", reliability.ErrUnknownGatewayClient, phone)
		}
		return nil, fmt.Errorf("failed to update gateway client: %w", err)
	}

	return client, nil
}

func (s *gatewayService) GetClient(ctx context.Context, msisdn string) (*models.GatewayClient, error) {
	phone, err := models.NormalizePhoneNumber(msisdn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", reliability.ErrUnknownGatewayClient, msisdn)
	}

	client, err := s.clients.Get(ctx, phone.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", reliability.ErrUnknownGatewayClient, phone)
		}
		return nil, fmt.Errorf("failed to get gateway client: %w", err)
	}

	return client, nil
}

func (s *gatewayService) ListClients(ctx context.Context, filter models.GatewayClientFilter) ([]*models.GatewayClient, error) {
	if filter.MinReliability != nil && (*filter.MinReliability < 0 || *filter.MinReliability > 1) {
		return nil, fmt.Errorf("%w: min_reliability must be within [0, 1]", ErrInvalidGatewayClient)
	}

	clients, err := s.clients.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list gateway clients: %w", err)
	}
	return clients, nil
}

func normalizeProtocols(protocols []string) []string {
	seen := make(map[string]struct{}, len(protocols))
	out := make([]string, 0, len(protocols))
	for _, p := range protocols {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
