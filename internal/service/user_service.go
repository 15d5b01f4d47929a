package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/griffin1995/gift-sync/internal/entities"
	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
	"github.com/griffin1995/gift-sync/internal/repository"
)

func newID() string {
	return uuid.NewString()
}

// UserService defines the interface for direct user management
type UserService interface {
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser inserts a user row, generating an id when the client did not
// supply one
func (s *userService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*entities.User, error) {
	id := newID()
	if req.ID != nil {
		id = *req.ID
	}

	tier := "free"
	if req.SubscriptionTier != nil {
		tier = *req.SubscriptionTier
	}

	consent := false
	if req.GDPRConsent != nil {
		consent = *req.GDPRConsent
	}

	user := &entities.User{
		ID:               id,
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		SubscriptionTier: tier,
		GDPRConsent:      consent,
	}

	return s.userRepo.Create(ctx, user)
}

// GetUser returns a user row by id
func (s *userService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// ensureUserExists performs the lazy foreign-key repair shared by swipe
// sessions and gift links: when the referenced user id has no row, a minimal
// placeholder user is synthesized with an email derived from the id.
func ensureUserExists(ctx context.Context, userRepo repository.UserRepository, userID string) error {
	_, err := userRepo.FindByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	placeholder := &entities.User{
		ID:               userID,
		Email:            fmt.Sprintf("%s@test.com", userID),
		SubscriptionTier: "free",
		GDPRConsent:      true,
	}
	if _, err := userRepo.Create(ctx, placeholder); err != nil {
		return err
	}
	return nil
}
