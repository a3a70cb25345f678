package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

// ContactRepository is write-only from the service's perspective; inquiries
// are read elsewhere.
type ContactRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewContactRepository(db *mongo.Database, log *logger.Logger) *ContactRepository {
	return &ContactRepository{
		collection: db.Collection("contacts"),
		logger:     log,
	}
}

func (r *ContactRepository) Create(ctx context.Context, request *domain.ContactRequest) error {
	doc := &contactDocument{
		ListingID:   request.ListingID,
		SenderName:  request.SenderName,
		SenderEmail: request.SenderEmail,
		Message:     request.Message,
		CreatedAt:   request.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("contact insert failed", zap.String("listing_id", request.ListingID), zap.Error(err))
		return err
	}
	return nil
}
