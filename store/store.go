// Package store is the generic accessor over named collections: every page
// module persists through these helpers so records carry the same identifier
// and timestamp stamps.
package store

import (
	"context"
	"time"

	"pharmadesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Validator is implemented by record types that check their own required
// fields. Create rejects invalid documents before any write.
type Validator interface {
	Validate() error
}

// Create inserts doc with a generated id, createdAt stamp and the creator's
// identity, and returns the new id. A non-empty "id" already present on the
// document is kept.
func Create(ctx context.Context, coll *mongo.Collection, doc any, userID string) (string, error) {
	if v, ok := doc.(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", err
		}
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}

	id, _ := m["id"].(string)
	if id == "" {
		id = utils.GenerateID(14)
		m["id"] = id
	}
	m["createdAt"] = time.Now().Format(time.RFC3339)
	if userID != "" {
		m["createdBy"] = userID
	}

	if _, err := coll.InsertOne(ctx, m); err != nil {
		return "", err
	}
	return id, nil
}

// Get decodes the document with the given id into out.
func Get(ctx context.Context, coll *mongo.Collection, id string, out any) error {
	return coll.FindOne(ctx, bson.M{"id": id}).Decode(out)
}

// Update merges fields into the document with the given id and stamps
// updatedAt. Fields absent from the map are left untouched.
func Update(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) error {
	fields["updatedAt"] = time.Now().Format(time.RFC3339)
	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes the document with the given id.
func Delete(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List decodes every document in the collection into out, optionally sorted
// ascending by orderBy.
func List(ctx context.Context, coll *mongo.Collection, orderBy string, out any) error {
	opts := options.Find()
	if orderBy != "" {
		opts.SetSort(bson.D{{Key: orderBy, Value: 1}})
	}
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// Query decodes every document whose field equals value into out.
func Query(ctx context.Context, coll *mongo.Collection, field string, value any, out any) error {
	cursor, err := coll.Find(ctx, bson.M{field: value})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// Count returns the number of documents in the collection.
func Count(ctx context.Context, coll *mongo.Collection) (int64, error) {
	return coll.CountDocuments(ctx, bson.M{})
}
