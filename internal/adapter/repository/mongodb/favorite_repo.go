package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/armazena/listing-service/internal/listing/domain"
	"github.com/armazena/listing-service/internal/platform/logger"
)

type FavoriteRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewFavoriteRepository(db *mongo.Database, log *logger.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		collection: db.Collection("favorites"),
		logger:     log,
	}
}

// EnsureIndexes creates the unique (user_email, listing_id) index that backs
// the one-link-per-pair invariant under concurrent adds. Call once at
// startup.
func (r *FavoriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_email", Value: 1},
			{Key: "listing_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *FavoriteRepository) Insert(ctx context.Context, favorite *domain.Favorite) error {
	favorite.CreatedAt = time.Now().UTC()

	doc := &favoriteDocument{
		UserEmail: favorite.UserEmail,
		ListingID: favorite.ListingID,
		CreatedAt: favorite.CreatedAt,
	}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyFavorited
		}
		r.logger.Error("favorite insert failed",
			zap.String("user", favorite.UserEmail), zap.String("listing_id", favorite.ListingID), zap.Error(err))
		return err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type for favorite")
	}
	favorite.ID = oid.Hex()
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userEmail, listingID string) error {
	filter := bson.M{"user_email": userEmail, "listing_id": listingID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		r.logger.Error("favorite delete failed",
			zap.String("user", userEmail), zap.String("listing_id", listingID), zap.Error(err))
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFavorited
	}
	return nil
}

func (r *FavoriteRepository) ListingIDsByUser(ctx context.Context, userEmail string) ([]string, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_email": userEmail}, findOptions)
	if err != nil {
		r.logger.Error("favorite query failed", zap.String("user", userEmail), zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ListingID)
	}
	return ids, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userEmail, listingID string) (bool, error) {
	filter := bson.M{"user_email": userEmail, "listing_id": listingID}
	err := r.collection.FindOne(ctx, filter).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
