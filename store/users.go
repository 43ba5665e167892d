package store

import (
	"context"
	"sync"

	"admin-panel-client/models"
)

type userAPI interface {
	GetAllUsers(ctx context.Context, page, limit int) (*models.UsersResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.User, error)
	UpdateUserRole(ctx context.Context, id int64, role string) (string, error)
	DeleteUser(ctx context.Context, id int64) (string, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	GetUserStats(ctx context.Context) (*models.UserStats, error)
	SearchUsers(ctx context.Context, params models.UserSearchParams) (*models.UsersResponse, error)
}

// UsersStore backs the super-admin user management screen. Same pattern as
// the products store; no optimistic paths.
type UsersStore struct {
	api userAPI

	mu               sync.RWMutex
	users            []models.User
	currentUser      *models.User
	stats            *models.UserStats
	pagination       *models.Pagination
	searchResults    []models.User
	searchPagination *models.Pagination
	loading          bool
	err              string
}

func NewUsersStore(api userAPI) *UsersStore {
	return &UsersStore{api: api}
}

func (s *UsersStore) FetchUsers(ctx context.Context, page, limit int) error {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.GetAllUsers(ctx, page, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch users")
		return err
	}
	s.users = resp.Users
	s.pagination = resp.Pagination
	s.err = ""
	return nil
}

func (s *UsersStore) FetchUserByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	user, err := s.api.GetUserByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch user")
		return err
	}
	s.currentUser = user
	s.err = ""
	return nil
}

func (s *UsersStore) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	user, err := s.api.CreateAdmin(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to create admin")
		return err
	}
	s.users = append([]models.User{*user}, s.users...)
	s.err = ""
	return nil
}

func (s *UsersStore) UpdateUserRole(ctx context.Context, id int64, role string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	_, err := s.api.UpdateUserRole(ctx, id, role)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to update user role")
		return err
	}
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			break
		}
	}
	s.err = ""
	return nil
}

func (s *UsersStore) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	_, err := s.api.DeleteUser(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to delete user")
		return err
	}
	kept := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	if s.currentUser != nil && s.currentUser.ID == id {
		s.currentUser = nil
	}
	s.err = ""
	return nil
}

// UpdateProfile updates the signed-in user's own record; the auth store's
// session copy is merged separately by the caller.
func (s *UsersStore) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	user, err := s.api.UpdateProfile(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to update profile")
		return nil, err
	}
	s.err = ""
	return user, nil
}

func (s *UsersStore) FetchStats(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	stats, err := s.api.GetUserStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "Failed to fetch user stats")
		return err
	}
	s.stats = stats
	s.err = ""
	return nil
}

func (s *UsersStore) SearchUsers(ctx context.Context, params models.UserSearchParams) error {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	resp, err := s.api.SearchUsers(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errMessage(err, "User search failed")
		return err
	}
	s.searchResults = resp.Users
	s.searchPagination = resp.Pagination
	s.err = ""
	return nil
}

func (s *UsersStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *UsersStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *UsersStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

func (s *UsersStore) Stats() *models.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return nil
	}
	st := *s.stats
	return &st
}

func (s *UsersStore) Pagination() *models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pagination == nil {
		return nil
	}
	p := *s.pagination
	return &p
}

func (s *UsersStore) SearchResults() ([]models.User, *models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]models.User, len(s.searchResults))
	copy(results, s.searchResults)
	if s.searchPagination == nil {
		return results, nil
	}
	p := *s.searchPagination
	return results, &p
}

func (s *UsersStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *UsersStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
