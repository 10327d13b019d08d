package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lumenasoft/usersvc/internal/users/domain"
	"github.com/lumenasoft/usersvc/internal/users/store"
	"github.com/lumenasoft/usersvc/pkg/cryptox"
	"github.com/lumenasoft/usersvc/pkg/userapi"
)

// UserService implements the five CRUD operations. It holds no per-request
// state; every call is a single read-validate-write step against the store,
// with mutations wrapped in a transaction.
type UserService struct {
	Store store.Store
}

// ListUsers returns every user. No pagination or filtering.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// GetUser fetches a user by primary key.
func (s *UserService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// CreateUser validates the payload (password required), checks email
// uniqueness, hashes the password, and inserts the record in a transaction.
func (s *UserService) CreateUser(ctx context.Context, p *userapi.UserPayload) (domain.User, error) {
	if err := validatePayload(p, true); err != nil {
		return domain.User{}, err
	}

	if err := s.checkEmailFree(ctx, *p.Email, 0); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(*p.Password)
	if err != nil {
		return domain.User{}, err
	}

	age, _ := parseAge(p.Age) // already validated

	now := time.Now().UTC()
	u := domain.User{
		Name:         *p.Name,
		Email:        *p.Email,
		PasswordHash: hash,
		Age:          age,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Users().CreateUser(ctx, u)
		if err != nil {
			return err
		}
		u.ID = id
		return nil
	})
	if err != nil {
		// The unique constraint backstops a race between the pre-check and
		// the insert.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return u, nil
}

// UpdateUser applies a partial update: only supplied fields are validated
// and written. A supplied password is re-hashed; updated_at is always
// refreshed on success.
func (s *UserService) UpdateUser(ctx context.Context, id int64, p *userapi.UserPayload) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if p == nil || isEmptyPayload(p) {
		return domain.User{}, validationError("no data provided")
	}

	if p.Email != nil {
		if !strings.Contains(*p.Email, "@") {
			return domain.User{}, validationError("email must be a valid email address")
		}
		if err := s.checkEmailFree(ctx, *p.Email, id); err != nil {
			return domain.User{}, err
		}
		u.Email = *p.Email
	}

	if len(p.Age) > 0 {
		age, err := parseAge(p.Age)
		if err != nil {
			return domain.User{}, err
		}
		u.Age = age // explicit null clears the stored age
	}

	if p.Name != nil {
		u.Name = *p.Name
	}

	if p.Password != nil {
		hash, err := cryptox.HashPassword(*p.Password)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = hash
	}

	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}

	u.UpdatedAt = time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().UpdateUser(ctx, u)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTakenByOther
		}
		return domain.User{}, err
	}

	return u, nil
}

// DeleteUser removes a user and returns the snapshot taken before deletion.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().DeleteUser(ctx, id)
	})
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}

// checkEmailFree is the uniqueness pre-check. excludeID carves out the
// record being updated; 0 means no exclusion (create path).
func (s *UserService) checkEmailFree(ctx context.Context, email string, excludeID int64) error {
	existing, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	if excludeID == 0 {
		return ErrEmailTaken
	}
	if existing.ID != excludeID {
		return ErrEmailTakenByOther
	}
	return nil
}
