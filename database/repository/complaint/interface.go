// File: database/repository/complaint/interface.go
package complaintRepo

import (
	"context"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ComplaintRepository defines data access for player complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, c *models.Complaint) error
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	ListByStatus(ctx context.Context, status string) ([]models.Complaint, error)
	ListByUser(ctx context.Context, userID string) ([]models.Complaint, error)
	// Resolve sets the terminal status and the admin's resolution note.
	Resolve(ctx context.Context, id, status, resolution string) (*models.Complaint, error)
}

type mongoComplaintRepo struct {
	coll *mongo.Collection
}

// NewMongoComplaintRepo constructs a new MongoDB ComplaintRepository.
func NewMongoComplaintRepo() ComplaintRepository {
	return &mongoComplaintRepo{
		coll: database.DB().Collection("complaints"),
	}
}
