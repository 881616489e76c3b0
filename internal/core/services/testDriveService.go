package services

import (
	"context"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type TestDriveService struct {
	api      ports.TestDriveAPI
	cars     ports.CatalogSource
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewTestDriveService(
	api ports.TestDriveAPI,
	cars ports.CatalogSource,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *TestDriveService {
	return &TestDriveService{
		api:      api,
		cars:     cars,
		logger:   logger,
		validate: validate,
	}
}

// Submit books a test drive. Only customers may request one.
func (s *TestDriveService) Submit(ctx context.Context, session *domain.Session, req *domain.TestDriveRequest) (*domain.TestDrive, error) {
	if err := authorizeCustomer(session, domain.ErrTestDriveRole); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(req); err != nil {
		s.logger.Error("Test drive validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}

	drive, err := s.api.SubmitTestDrive(ctx, session.Token, req)
	if err != nil {
		s.logger.Error("Failed to submit test drive", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
			"car_id":  req.VehicleID,
		})
		return nil, err
	}

	s.logger.Info("Test drive requested", map[string]interface{}{
		"test_drive_id": drive.ID,
		"user_id":       session.User.ID,
		"car_id":        req.VehicleID,
	})

	return drive, nil
}

func (s *TestDriveService) ListMine(ctx context.Context, session *domain.Session) ([]*domain.TestDrive, error) {
	if session == nil || session.Token == "" {
		return nil, domain.ErrUnauthenticated
	}

	drives, err := s.api.ListMyTestDrives(ctx, session.Token)
	if err != nil {
		s.logger.Error("Failed to get test drives", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
		})
		return nil, err
	}

	s.logger.Debug("Retrieved test drives for user", map[string]interface{}{
		"user_id": session.User.ID,
		"count":   len(drives),
	})

	return drives, nil
}

// ListAll returns every request, optionally narrowed to one status.
func (s *TestDriveService) ListAll(ctx context.Context, session *domain.Session, status domain.TestDriveStatus) ([]*domain.TestDrive, error) {
	if err := authorizeOwner(session); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, &domain.ValidationError{Message: "Unknown test drive status"}
	}

	drives, err := s.api.ListOwnerTestDrives(ctx, session.Token)
	if err != nil {
		s.logger.Error("Failed to get owner test drives", map[string]interface{}{
			"error":   err.Error(),
			"user_id": session.User.ID,
		})
		return nil, err
	}

	if status == "" {
		return drives, nil
	}
	filtered := make([]*domain.TestDrive, 0, len(drives))
	for _, d := range drives {
		if d.Status == status {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *TestDriveService) UpdateStatus(ctx context.Context, session *domain.Session, id int64, status domain.TestDriveStatus) error {
	if err := authorizeOwner(session); err != nil {
		return err
	}
	if !status.Valid() {
		return &domain.ValidationError{Message: "Unknown test drive status"}
	}

	if err := s.api.UpdateTestDriveStatus(ctx, session.Token, id, status); err != nil {
		s.logger.Error("Failed to update test drive status", map[string]interface{}{
			"error":         err.Error(),
			"test_drive_id": id,
			"status":        status,
		})
		return err
	}

	s.logger.Info("Test drive status updated", map[string]interface{}{
		"test_drive_id": id,
		"status":        status,
		"user_id":       session.User.ID,
	})
	return nil
}

// Dashboard counts inventory and test drives for the owner dashboard.
func (s *TestDriveService) Dashboard(ctx context.Context, session *domain.Session) (*domain.DashboardStats, error) {
	if err := authorizeOwner(session); err != nil {
		return nil, err
	}

	cars, err := s.cars.ListCars(ctx)
	if err != nil {
		s.logger.Error("Failed to count cars", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	drives, err := s.api.ListOwnerTestDrives(ctx, session.Token)
	if err != nil {
		s.logger.Error("Failed to count test drives", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	stats := &domain.DashboardStats{
		Cars:       len(cars),
		TestDrives: len(drives),
	}
	for _, d := range drives {
		switch d.Status {
		case domain.TestDrivePending:
			stats.Pending++
		case domain.TestDriveApproved:
			stats.Approved++
		}
	}
	return stats, nil
}
