package results

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/shared/telemetry"
)

// MongoCollection is the collection MongoStore writes to.
const MongoCollection = "recommendation_slots"

// MongoStore keeps one document per visitor, keyed by _id.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

type slotDocument struct {
	VisitorID string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (s *MongoStore) Save(ctx context.Context, visitorID string, result recommendations.Result) error {
	if visitorID == "" {
		return ErrVisitorRequired
	}
	raw, err := Encode(result)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"payload":   string(raw),
		"updatedAt": time.Now().UTC(),
	}}
	_, err = s.coll.UpdateOne(ctx, bson.M{"_id": visitorID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert slot: %w", err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, visitorID string) (recommendations.Result, bool, error) {
	var doc slotDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": visitorID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return recommendations.Result{}, false, nil
	}
	if err != nil {
		return recommendations.Result{}, false, fmt.Errorf("mongo find slot: %w", err)
	}
	result, ok := Decode([]byte(doc.Payload))
	if !ok {
		telemetry.Warn("results.malformed_slot", map[string]any{"store": "mongo", "visitor_id": visitorID})
	}
	return result, ok, nil
}

func (s *MongoStore) Clear(ctx context.Context, visitorID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": visitorID}); err != nil {
		return fmt.Errorf("mongo delete slot: %w", err)
	}
	return nil
}

var _ Store = (*MongoStore)(nil)
