// Package mongodb implements the generic repository contract over a
// MongoDB collection. Concrete entities get thin instantiations instead of
// their own data-access code.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseRepository is a generic document repository. T is the stored entity
// shape, C the creation-input shape; both carry bson tags. Timestamps are
// assigned here, never by callers. Absence is (nil, nil), never an error.
type BaseRepository[T any, C any] struct {
	coll *mongo.Collection
	sort bson.D // optional find ordering; nil means unspecified
}

// NewBaseRepository creates a repository over one collection.
func NewBaseRepository[T any, C any](coll *mongo.Collection) *BaseRepository[T, C] {
	return &BaseRepository[T, C]{coll: coll}
}

// WithSort sets an explicit ordering for Find results.
func (r *BaseRepository[T, C]) WithSort(sort bson.D) *BaseRepository[T, C] {
	r.sort = sort
	return r
}

// Create inserts a new document and returns the stored record.
func (r *BaseRepository[T, C]) Create(ctx context.Context, data C) (*T, error) {
	doc, err := toDocument(data)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert failed: %w", err)
	}

	var created T
	if err := r.coll.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to read back inserted document: %w", err)
	}
	return &created, nil
}

// FindOne returns the first document matching filter, or (nil, nil).
func (r *BaseRepository[T, C]) FindOne(ctx context.Context, filter map[string]any) (*T, error) {
	var out T
	err := r.coll.FindOne(ctx, toFilter(filter)).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("findOne failed: %w", err)
	}
	return &out, nil
}

// FindByID returns the document with the given id, or (nil, nil). A
// malformed id is absence, not an error.
func (r *BaseRepository[T, C]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.FindOne(ctx, map[string]any{"_id": oid})
}

// Find returns every document matching filter. Order is unspecified unless
// the repository was configured with WithSort.
func (r *BaseRepository[T, C]) Find(ctx context.Context, filter map[string]any) ([]*T, error) {
	opts := options.Find()
	if r.sort != nil {
		opts.SetSort(r.sort)
	}

	cursor, err := r.coll.Find(ctx, toFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	out := []*T{}
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		out = append(out, &doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor failed: %w", err)
	}
	return out, nil
}

// Update applies a partial field replace and returns the updated document,
// or (nil, nil) when no document has the given id.
func (r *BaseRepository[T, C]) Update(ctx context.Context, id string, partial map[string]any) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{}
	for k, v := range partial {
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out T
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &out, nil
}

// Delete removes the document with the given id and reports whether one
// was removed.
func (r *BaseRepository[T, C]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete failed: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// Upsert replaces the fields of the document matching filter with data, or
// inserts filter+data when nothing matches. This is a single atomic
// findOneAndUpdate, so concurrent first-time upserts on the same filter
// cannot create duplicates; the store resolves them last-write-wins.
func (r *BaseRepository[T, C]) Upsert(ctx context.Context, filter map[string]any, data C) (*T, error) {
	set, err := toDocument(data)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	set["updatedAt"] = now

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out T
	err = r.coll.FindOneAndUpdate(ctx, toFilter(filter), update, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("upsert failed: %w", err)
	}
	return &out, nil
}

// toDocument flattens a tagged struct into a bson map so timestamps can be
// merged in before writing.
func toDocument(data any) (bson.M, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}

func toFilter(filter map[string]any) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
