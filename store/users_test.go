package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-panel-client/gateway"
	"admin-panel-client/models"
)

type fakeUserAPI struct {
	getAll        func(ctx context.Context, page, limit int) (*models.UsersResponse, error)
	getByID       func(ctx context.Context, id int64) (*models.User, error)
	createAdmin   func(ctx context.Context, req models.CreateAdminRequest) (*models.User, error)
	updateRole    func(ctx context.Context, id int64, role string) (string, error)
	deleteByID    func(ctx context.Context, id int64) (string, error)
	updateProfile func(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	getStats      func(ctx context.Context) (*models.UserStats, error)
	search        func(ctx context.Context, params models.UserSearchParams) (*models.UsersResponse, error)
}

func (f *fakeUserAPI) GetAllUsers(ctx context.Context, page, limit int) (*models.UsersResponse, error) {
	return f.getAll(ctx, page, limit)
}

func (f *fakeUserAPI) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return f.getByID(ctx, id)
}

func (f *fakeUserAPI) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.User, error) {
	return f.createAdmin(ctx, req)
}

func (f *fakeUserAPI) UpdateUserRole(ctx context.Context, id int64, role string) (string, error) {
	return f.updateRole(ctx, id, role)
}

func (f *fakeUserAPI) DeleteUser(ctx context.Context, id int64) (string, error) {
	return f.deleteByID(ctx, id)
}

func (f *fakeUserAPI) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	return f.updateProfile(ctx, req)
}

func (f *fakeUserAPI) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	return f.getStats(ctx)
}

func (f *fakeUserAPI) SearchUsers(ctx context.Context, params models.UserSearchParams) (*models.UsersResponse, error) {
	return f.search(ctx, params)
}

func loadedUsersStore(t *testing.T, api *fakeUserAPI) *UsersStore {
	t.Helper()
	prev := api.getAll
	api.getAll = func(context.Context, int, int) (*models.UsersResponse, error) {
		return &models.UsersResponse{
			Users: []models.User{
				{ID: 1, Name: "Alice", Email: "alice@example.com", Role: models.RoleAdmin},
				{ID: 2, Name: "Bob", Email: "bob@example.com", Role: models.RoleUser},
			},
			Pagination: &models.Pagination{Page: 1, Limit: 10, Total: 2, TotalPages: 1},
		}, nil
	}
	s := NewUsersStore(api)
	require.NoError(t, s.FetchUsers(context.Background(), 1, 10))
	api.getAll = prev
	return s
}

func TestFetchUsers(t *testing.T) {
	s := loadedUsersStore(t, &fakeUserAPI{})

	assert.Len(t, s.Users(), 2)
	require.NotNil(t, s.Pagination())
	assert.Equal(t, 2, s.Pagination().Total)
	assert.Equal(t, "", s.Err())
}

func TestCreateAdmin_Prepends(t *testing.T) {
	api := &fakeUserAPI{
		createAdmin: func(_ context.Context, req models.CreateAdminRequest) (*models.User, error) {
			return &models.User{ID: 3, Name: req.Name, Email: req.Email, Role: models.RoleAdmin}, nil
		},
	}
	s := loadedUsersStore(t, api)

	err := s.CreateAdmin(context.Background(), models.CreateAdminRequest{
		Name:     "Carol",
		Email:    "carol@example.com",
		Password: "changeme1",
	})

	require.NoError(t, err)
	users := s.Users()
	require.Len(t, users, 3)
	assert.Equal(t, "Carol", users[0].Name)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestUpdateUserRole_UpdatesInList(t *testing.T) {
	api := &fakeUserAPI{
		updateRole: func(context.Context, int64, string) (string, error) {
			return "Role updated", nil
		},
	}
	s := loadedUsersStore(t, api)

	require.NoError(t, s.UpdateUserRole(context.Background(), 2, models.RoleAdmin))

	users := s.Users()
	assert.Equal(t, models.RoleAdmin, users[1].Role)
}

func TestDeleteUser_FiltersAndClearsCurrent(t *testing.T) {
	api := &fakeUserAPI{
		getByID: func(_ context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Alice"}, nil
		},
		deleteByID: func(context.Context, int64) (string, error) {
			return "User deleted", nil
		},
	}
	s := loadedUsersStore(t, api)
	require.NoError(t, s.FetchUserByID(context.Background(), 1))
	require.NotNil(t, s.CurrentUser())

	require.NoError(t, s.DeleteUser(context.Background(), 1))

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, int64(2), users[0].ID)
	assert.Nil(t, s.CurrentUser())
}

func TestUpdateUserRole_FailureLeavesListUntouched(t *testing.T) {
	api := &fakeUserAPI{
		updateRole: func(context.Context, int64, string) (string, error) {
			return "", &gateway.APIError{Status: 403, Message: "Access denied. Super admin privileges required."}
		},
	}
	s := loadedUsersStore(t, api)

	err := s.UpdateUserRole(context.Background(), 2, models.RoleAdmin)

	require.Error(t, err)
	assert.Equal(t, "Access denied. Super admin privileges required.", s.Err())
	assert.Equal(t, models.RoleUser, s.Users()[1].Role)
}

func TestFetchStats(t *testing.T) {
	api := &fakeUserAPI{
		getStats: func(context.Context) (*models.UserStats, error) {
			return &models.UserStats{TotalUsers: 12, AdminCount: 3, RecentCount: 4}, nil
		},
	}
	s := loadedUsersStore(t, api)

	require.NoError(t, s.FetchStats(context.Background()))

	stats := s.Stats()
	require.NotNil(t, stats)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 3, stats.AdminCount)
}

func TestSearchUsers_ResultsSeparateFromList(t *testing.T) {
	api := &fakeUserAPI{
		search: func(_ context.Context, params models.UserSearchParams) (*models.UsersResponse, error) {
			assert.Equal(t, "ali", params.Query)
			return &models.UsersResponse{
				Users:      []models.User{{ID: 1, Name: "Alice"}},
				Pagination: &models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
			}, nil
		},
	}
	s := loadedUsersStore(t, api)

	require.NoError(t, s.SearchUsers(context.Background(), models.UserSearchParams{Query: "ali"}))

	results, pagination := s.SearchResults()
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].Name)
	require.NotNil(t, pagination)
	assert.Equal(t, 1, pagination.Total)
	assert.Len(t, s.Users(), 2)
}
