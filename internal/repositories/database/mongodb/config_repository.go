package mongodb

import (
	"context"
	"errors"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const configsCollection = "financial_configs"

type MongoFinancialConfigRepository struct {
	collection *mongo.Collection
}

func newMongoFinancialConfigRepository(db *mongo.Database) *MongoFinancialConfigRepository {
	return &MongoFinancialConfigRepository{collection: db.Collection(configsCollection)}
}

var _ portsrepo.FinancialConfigRepositoryFacade = (*MongoFinancialConfigRepository)(nil)

// SaveConfig upserts the user's config; the creation audit is only written on insert.
func (r *MongoFinancialConfigRepository) SaveConfig(ctx context.Context, cfg domain.FinancialConfig) error {
	doc, err := toConfigDocument(cfg)
	if err != nil {
		return apperrors.NewAppError(400, "failed to encode financial config", apperrors.ErrValidation)
	}
	update := bson.M{
		"$set": bson.M{
			"monthlyIncome":          doc.MonthlyIncome,
			"fixedObligations":       doc.FixedObligations,
			"emergencyBufferPercent": doc.EmergencyBufferPercent,
			"lastUpdatedAt":          doc.LastUpdatedAt,
			"lastUpdatedBy":          doc.LastUpdatedBy,
		},
		"$setOnInsert": bson.M{
			"createdAt": doc.CreatedAt,
			"createdBy": doc.CreatedBy,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": doc.UserID}, update, opts); err != nil {
		return apperrors.NewUnavailableError("failed to save financial config for user "+cfg.UserID, err)
	}
	return nil
}

func (r *MongoFinancialConfigRepository) FindConfigByUserID(ctx context.Context, userID string) (*domain.FinancialConfig, error) {
	var doc configDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewUnavailableError("failed to find financial config for user "+userID, err)
	}
	cfg, err := doc.toDomain()
	if err != nil {
		return nil, apperrors.NewUnavailableError("stored financial config is corrupt", err)
	}
	return &cfg, nil
}

func (r *MongoFinancialConfigRepository) ListConfiguredUserIDs(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to list configured users", err)
	}
	var rows []struct {
		UserID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, apperrors.NewUnavailableError("failed to read configured users", err)
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.UserID
	}
	return ids, nil
}
