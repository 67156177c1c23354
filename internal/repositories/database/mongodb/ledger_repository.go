package mongodb

import (
	"context"
	"errors"

	"github.com/SscSPs/money_coach_app/internal/apperrors"
	"github.com/SscSPs/money_coach_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_coach_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_coach_app/internal/utils/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const transactionsCollection = "transactions"

type MongoLedgerRepository struct {
	collection *mongo.Collection
}

func newMongoLedgerRepository(db *mongo.Database) *MongoLedgerRepository {
	return &MongoLedgerRepository{collection: db.Collection(transactionsCollection)}
}

var _ portsrepo.LedgerRepositoryFacade = (*MongoLedgerRepository)(nil)

// ensureIndexes backs both the engine reads and the newest-first listing.
func (r *MongoLedgerRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}, {Key: "_id", Value: -1}},
	})
	return err
}

func (r *MongoLedgerRepository) AppendTransaction(ctx context.Context, txn domain.Transaction) error {
	doc, err := toTransactionDocument(txn)
	if err != nil {
		return apperrors.NewAppError(400, "failed to encode transaction "+txn.TransactionID, apperrors.ErrValidation)
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewAppError(409, "transaction "+txn.TransactionID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewUnavailableError("failed to insert transaction "+txn.TransactionID, err)
	}
	return nil
}

func (r *MongoLedgerRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	doc, err := toTransactionDocument(txn)
	if err != nil {
		return apperrors.NewAppError(400, "failed to encode transaction "+txn.TransactionID, apperrors.ErrValidation)
	}
	res, err := r.collection.UpdateOne(ctx, ownedBy(txn.UserID, txn.TransactionID), bson.M{"$set": bson.M{
		"date":          doc.Date,
		"amount":        doc.Amount,
		"type":          doc.Type,
		"category":      doc.Category,
		"description":   doc.Description,
		"lastUpdatedAt": doc.LastUpdatedAt,
		"lastUpdatedBy": doc.LastUpdatedBy,
	}})
	if err != nil {
		return apperrors.NewUnavailableError("failed to update transaction "+txn.TransactionID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError("transaction " + txn.TransactionID + " not found for update")
	}
	return nil
}

func (r *MongoLedgerRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	res, err := r.collection.DeleteOne(ctx, ownedBy(userID, transactionID))
	if err != nil {
		return apperrors.NewUnavailableError("failed to delete transaction "+transactionID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	return nil
}

func (r *MongoLedgerRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	var doc transactionDocument
	if err := r.collection.FindOne(ctx, ownedBy(userID, transactionID)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return nil, apperrors.NewUnavailableError("failed to find transaction "+transactionID, err)
	}
	txn, err := doc.toDomain()
	if err != nil {
		return nil, apperrors.NewUnavailableError("stored transaction is corrupt", err)
	}
	return &txn, nil
}

func (r *MongoLedgerRepository) FindTransactions(ctx context.Context, userID string, filter domain.LedgerFilter) ([]domain.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, ledgerQuery(userID, filter), opts)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to query ledger for user "+userID, err)
	}
	docs, err := decodeTransactions(ctx, cursor)
	if err != nil {
		return nil, apperrors.NewUnavailableError("failed to read ledger for user "+userID, err)
	}
	return toDomainTransactions(docs)
}

func (r *MongoLedgerRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.ClampLimit(limit)

	query := bson.M{"userId": userID}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		query = pageAfter(userID, lastDate, lastID)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit + 1))
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, nil, apperrors.NewUnavailableError("failed to list transactions for user "+userID, err)
	}
	docs, err := decodeTransactions(ctx, cursor)
	if err != nil {
		return nil, nil, apperrors.NewUnavailableError("failed to read transactions for user "+userID, err)
	}

	var next *string
	if len(docs) > limit {
		docs = docs[:limit]
		last := docs[limit-1]
		token := pagination.EncodeToken(last.Date, last.ID)
		next = &token
	}
	txns, err := toDomainTransactions(docs)
	if err != nil {
		return nil, nil, err
	}
	return txns, next, nil
}

func decodeTransactions(ctx context.Context, cursor *mongo.Cursor) ([]transactionDocument, error) {
	var docs []transactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func toDomainTransactions(docs []transactionDocument) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(docs))
	for _, d := range docs {
		t, err := d.toDomain()
		if err != nil {
			return nil, apperrors.NewUnavailableError("stored transaction is corrupt", err)
		}
		out = append(out, t)
	}
	return out, nil
}
