package service

import (
	"context"
	"errors"

	"github.com/civilci/intake-portal/internal/adapter"
	"github.com/civilci/intake-portal/internal/logger"
	"github.com/civilci/intake-portal/models"
)

type adminService struct {
	notifier adapter.Notifier
	logger   *logger.Logger
}

func NewAdminService(notifier adapter.Notifier, logger *logger.Logger) AdminService {
	return &adminService{notifier: notifier, logger: logger}
}

func (s *adminService) EmailStatus(ctx context.Context, actor *models.User) (models.EmailStatusResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return models.EmailStatusResponse{}, err
	}
	return models.EmailStatusResponse{Configured: s.notifier.Configured()}, nil
}

// EmailTest sends a test message synchronously. Delivery problems are
// reported in the response, not as an error.
func (s *adminService) EmailTest(ctx context.Context, actor *models.User) (models.EmailTestResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return models.EmailTestResponse{}, err
	}

	if !s.notifier.Configured() {
		return models.EmailTestResponse{Success: false, Message: "Email API key not configured"}, nil
	}

	err := s.notifier.SendTest(ctx)
	switch {
	case errors.Is(err, adapter.ErrMailerNotConfigured):
		return models.EmailTestResponse{Success: false, Message: "Email API key not configured"}, nil
	case err != nil:
		logger.FromContext(ctx).Warn().Err(err).Msg("test email failed")
		return models.EmailTestResponse{Success: false, Message: "Connection failed: " + err.Error()}, nil
	}

	return models.EmailTestResponse{
		Success: true,
		Message: "Test email sent to " + s.notifier.AdminAddress(),
	}, nil
}

func requireAdmin(actor *models.User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
