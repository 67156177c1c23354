package mongodb

import (
	"time"

	"github.com/SscSPs/money_coach_app/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// ledgerQuery translates a ledger filter into a Mongo query. Bounds are inclusive.
func ledgerQuery(userID string, f domain.LedgerFilter) bson.M {
	q := bson.M{"userId": userID}
	if f.From != nil || f.To != nil {
		date := bson.M{}
		if f.From != nil {
			date["$gte"] = f.From.UTC()
		}
		if f.To != nil {
			date["$lte"] = f.To.UTC()
		}
		q["date"] = date
	}
	if f.Direction != nil {
		q["type"] = string(*f.Direction)
	}
	return q
}

// pageAfter selects entries strictly older than the (date, id) cursor in newest-first order.
func pageAfter(userID string, lastDate time.Time, lastID string) bson.M {
	return bson.M{
		"userId": userID,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": lastDate.UTC()}},
			bson.M{"date": lastDate.UTC(), "_id": bson.M{"$lt": lastID}},
		},
	}
}

// ownedBy selects a single entry only when it belongs to userID.
func ownedBy(userID, transactionID string) bson.M {
	return bson.M{"_id": transactionID, "userId": userID}
}
