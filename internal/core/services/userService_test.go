package services

import (
	"context"
	"testing"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleUsers() []*domain.User {
	return []*domain.User{
		{ID: 1, Username: "admin", Email: "admin@elite.example", Role: domain.Admin},
		{ID: 2, Username: "owner", Email: "owner@elite.example", FullName: "Olivia Owner", Role: domain.Owner},
		{ID: 7, Username: "jdoe", Email: "jane@mail.example", FullName: "Jane Doe", Role: domain.Customer},
		{ID: 8, Username: "bsmith", Email: "bob@mail.example", Role: domain.Customer},
	}
}

func TestFilterUsers(t *testing.T) {
	users := sampleUsers()

	tests := []struct {
		name   string
		filter UserFilter
		want   []int64
	}{
		{"no filter", UserFilter{}, []int64{1, 2, 7, 8}},
		{"all role", UserFilter{Role: domain.All}, []int64{1, 2, 7, 8}},
		{"customers", UserFilter{Role: domain.Customer}, []int64{7, 8}},
		{"search username", UserFilter{Search: "SMITH"}, []int64{8}},
		{"search email", UserFilter{Search: "mail.example"}, []int64{7, 8}},
		{"search full name", UserFilter{Search: "olivia"}, []int64{2}},
		{"role and search", UserFilter{Role: domain.Customer, Search: "elite"}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUsers(users, tt.filter)
			ids := make([]int64, 0, len(got))
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUserService_List(t *testing.T) {
	api := new(mockDealership)
	svc := NewUserService(api, nopLogger{})
	api.On("ListUsers", mock.Anything, "admin-token").Return(sampleUsers(), nil)

	list, err := svc.List(context.Background(), adminSession(), UserFilter{Role: domain.Customer})
	require.NoError(t, err)
	assert.Len(t, list.Users, 2)
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, map[domain.UserRole]int{domain.Customer: 2, domain.Owner: 1, domain.Admin: 1}, list.RoleCounts)

	_, err = svc.List(context.Background(), ownerSession(), UserFilter{})
	assert.Equal(t, domain.ErrAdminsOnly, err)
}

func TestUserService_SelfProtection(t *testing.T) {
	api := new(mockDealership)
	svc := NewUserService(api, nopLogger{})
	ctx := context.Background()
	admin := adminSession()

	err := svc.ChangeRole(ctx, admin, admin.User.ID, domain.Customer)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "You cannot change your own role", domain.Reason(err, ""))

	err = svc.Delete(ctx, admin, admin.User.ID)
	assert.Equal(t, "You cannot delete yourself", domain.Reason(err, ""))

	api.AssertNotCalled(t, "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ChangeRoleAndDelete(t *testing.T) {
	api := new(mockDealership)
	svc := NewUserService(api, nopLogger{})
	ctx := context.Background()

	api.On("UpdateUserRole", mock.Anything, "admin-token", int64(7), domain.Owner).Return(nil)
	api.On("DeleteUser", mock.Anything, "admin-token", int64(8)).Return(nil)

	require.NoError(t, svc.ChangeRole(ctx, adminSession(), 7, domain.Owner))
	require.NoError(t, svc.Delete(ctx, adminSession(), 8))
	assert.ErrorIs(t, svc.ChangeRole(ctx, adminSession(), 7, "superuser"), domain.ErrValidation)
	api.AssertExpectations(t)
}
