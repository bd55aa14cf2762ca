package field

import (
	"context"
	"errors"

	fieldRepo "meydancha/database/repository/field"
	userRepo "meydancha/database/repository/user"
	"meydancha/models"
)

var (
	// ErrInvalidPrice is returned when a venue's hourly rate is not positive.
	ErrInvalidPrice = errors.New("pricePerHour must be greater than zero")
	// ErrOwnerNotApproved is returned when an unapproved owner tries to
	// manage venues.
	ErrOwnerNotApproved = errors.New("owner account is not approved")
	// ErrNotAllowed is returned when the actor does not own the venue.
	ErrNotAllowed = errors.New("not allowed")
)

// FieldService defines venue management and public search.
type FieldService interface {
	Create(ctx context.Context, ownerID string, req models.FieldCreateRequest) (*models.Field, error)
	GetByID(ctx context.Context, id string) (*models.Field, error)
	Update(ctx context.Context, id, actorID, actorRole string, req models.FieldUpdateRequest) (*models.Field, error)
	Delete(ctx context.Context, id, actorID, actorRole string) error
	// List is the public search; results are cached per filter.
	List(ctx context.Context, filter models.FieldFilter) ([]models.Field, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Field, error)
}

// DefaultFieldService is the production implementation.
type DefaultFieldService struct {
	Repo     fieldRepo.FieldRepository
	UserRepo userRepo.UserRepository
}

var _ FieldService = (*DefaultFieldService)(nil)
