package services

import (
	"context"
	"strings"

	"github.com/elitemotors/storefront/internal/core/domain"
	"github.com/elitemotors/storefront/internal/core/ports"
)

// UserFilter narrows the admin user list. Empty fields do not constrain.
type UserFilter struct {
	Role   domain.UserRole
	Search string
}

type UserList struct {
	Users      []*domain.User          `json:"users"`
	Total      int                     `json:"total"`
	RoleCounts map[domain.UserRole]int `json:"role_counts"`
}

type UserService struct {
	api    ports.UserAPI
	logger ports.LoggerPort
}

func NewUserService(api ports.UserAPI, logger ports.LoggerPort) *UserService {
	return &UserService{
		api:    api,
		logger: logger,
	}
}

func authorizeAdmin(session *domain.Session) error {
	if session == nil || session.Token == "" {
		return domain.ErrUnauthenticated
	}
	if !session.HasRole(domain.Admin) {
		return domain.ErrAdminsOnly
	}
	return nil
}

// List returns users matching filter. Total and RoleCounts describe the
// whole user base, not the filtered page.
func (s *UserService) List(ctx context.Context, session *domain.Session, filter UserFilter) (*UserList, error) {
	if err := authorizeAdmin(session); err != nil {
		return nil, err
	}
	if filter.Role != "" && filter.Role != domain.All && !filter.Role.Valid() {
		return nil, &domain.ValidationError{Message: "Unknown role"}
	}

	users, err := s.api.ListUsers(ctx, session.Token)
	if err != nil {
		s.logger.Error("Failed to list users", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	counts := map[domain.UserRole]int{
		domain.Customer: 0,
		domain.Owner:    0,
		domain.Admin:    0,
	}
	for _, u := range users {
		counts[u.Role]++
	}

	return &UserList{
		Users:      FilterUsers(users, filter),
		Total:      len(users),
		RoleCounts: counts,
	}, nil
}

// FilterUsers applies the role filter and a case-insensitive search over
// username, email and full name.
func FilterUsers(users []*domain.User, filter UserFilter) []*domain.User {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if filter.Role != "" && filter.Role != domain.All && u.Role != filter.Role {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Username), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) &&
			!strings.Contains(strings.ToLower(u.FullName), term) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *UserService) ChangeRole(ctx context.Context, session *domain.Session, id int64, role domain.UserRole) error {
	if err := authorizeAdmin(session); err != nil {
		return err
	}
	if id == session.User.ID {
		return &domain.ValidationError{Message: "You cannot change your own role"}
	}
	if !role.Valid() {
		return &domain.ValidationError{Message: "Unknown role"}
	}

	if err := s.api.UpdateUserRole(ctx, session.Token, id, role); err != nil {
		s.logger.Error("Failed to update user role", map[string]interface{}{
			"error":   err.Error(),
			"user_id": id,
			"role":    role,
		})
		return err
	}

	s.logger.Info("User role updated", map[string]interface{}{
		"user_id":  id,
		"role":     role,
		"admin_id": session.User.ID,
	})
	return nil
}

func (s *UserService) Delete(ctx context.Context, session *domain.Session, id int64) error {
	if err := authorizeAdmin(session); err != nil {
		return err
	}
	if id == session.User.ID {
		return &domain.ValidationError{Message: "You cannot delete yourself"}
	}

	if err := s.api.DeleteUser(ctx, session.Token, id); err != nil {
		s.logger.Error("Failed to delete user", map[string]interface{}{
			"error":   err.Error(),
			"user_id": id,
		})
		return err
	}

	s.logger.Info("User deleted", map[string]interface{}{
		"user_id":  id,
		"admin_id": session.User.ID,
	})
	return nil
}
