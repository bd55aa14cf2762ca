// File: database/repository/user/interface.go
package userRepo

import (
	"context"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies the mutable profile fields of an existing user.
	Update(ctx context.Context, id string, set map[string]interface{}) (*models.User, error)
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// ListOwnersByStatus retrieves owner accounts in one approval state.
	ListOwnersByStatus(ctx context.Context, status string) ([]models.User, error)
	// SetOwnerStatus transitions an owner's approval state.
	SetOwnerStatus(ctx context.Context, id, status string) (*models.User, error)
	// UpdatePasswordHash replaces the stored bcrypt hash.
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}
