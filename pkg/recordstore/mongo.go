package recordstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultRecordsCollection = "records"

// MongoStore implements Store on a MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wires the store onto a database, creating the tenant/domain
// index the query path relies on.
func NewMongoStore(ctx context.Context, db *mongo.Database, collection string) (*MongoStore, error) {
	if collection == "" {
		collection = defaultRecordsCollection
	}
	coll := db.Collection(collection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: FieldTenantID, Value: 1},
			{Key: FieldDomainID, Value: 1},
			{Key: FieldCreatedAt, Value: -1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating records index: %w", err)
	}
	return &MongoStore{coll: coll}, nil
}

// CreateRecord inserts the document with a fresh id and store-safe numerics.
func (s *MongoStore) CreateRecord(ctx context.Context, tenantID string, record map[string]any) (string, error) {
	id := uuid.NewString()
	doc := EncodeDecimals(record).(map[string]any)
	doc["_id"] = id
	doc[FieldTenantID] = tenantID
	now := time.Now().UTC()
	if _, ok := doc[FieldCreatedAt]; !ok {
		doc[FieldCreatedAt] = now
	}
	doc[FieldUpdatedAt] = now

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("inserting record: %w", err)
	}
	return id, nil
}

// MergeRecord applies the partial as dotted-path $set leaves plus $push for
// history arrays — one atomic document update in the store's sense.
func (s *MongoStore) MergeRecord(ctx context.Context, tenantID, recordID string, partial map[string]any) error {
	encoded := EncodeDecimals(partial).(map[string]any)

	set := map[string]any{FieldUpdatedAt: time.Now().UTC()}
	push := map[string][]any{}
	flattenForUpdate("", encoded, set, push)

	update := bson.M{"$set": set}
	if len(push) > 0 {
		each := bson.M{}
		for path, items := range push {
			each[path] = bson.M{"$each": items}
		}
		update["$push"] = each
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": recordID, FieldTenantID: tenantID},
		update,
	)
	if err != nil {
		return fmt.Errorf("merging record %s: %w", recordID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}
	return nil
}

// QueryRecords filters by tenant + domain plus optional equality predicates.
func (s *MongoStore) QueryRecords(ctx context.Context, tenantID, domainID string, filters map[string]any, limit int) ([]map[string]any, error) {
	filter := bson.M{FieldTenantID: tenantID, FieldDomainID: domainID}
	for k, v := range filters {
		filter[k] = EncodeDecimals(v)
	}

	opts := options.Find().SetSort(bson.D{{Key: FieldCreatedAt, Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer cursor.Close(ctx)

	var out []map[string]any
	for cursor.Next(ctx) {
		var doc map[string]any
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		out = append(out, DecodeDecimals(doc).(map[string]any))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return out, nil
}

// GetRecord fetches one tenant-scoped record.
func (s *MongoStore) GetRecord(ctx context.Context, tenantID, recordID string) (map[string]any, error) {
	var doc map[string]any
	err := s.coll.FindOne(ctx, bson.M{"_id": recordID, FieldTenantID: tenantID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
		}
		return nil, fmt.Errorf("fetching record %s: %w", recordID, err)
	}
	return DecodeDecimals(doc).(map[string]any), nil
}
