package service

import (
	"context"
	"fmt"
)

// Pinger is satisfied by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	db Pinger
}

func NewHealthService(db Pinger) HealthService {
	return &healthService{db: db}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}
