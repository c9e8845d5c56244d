package menuRepo

import (
	"context"
	"fmt"
	"time"

	"tably/config"
	"tably/database"
	"tably/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMenuRepo implements MenuRepository using MongoDB.
type MongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo creates a new instance of MenuRepository using MongoDB.
func NewMongoMenuRepo() MenuRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("menu_steps")
	repo := &MongoMenuRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMenuRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "position", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetSteps retrieves the ordered steps for a tenant and location.
func (r *MongoMenuRepo) GetSteps(tenantID, locationID string) ([]models.MenuStep, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"tenant_id": tenantID,
		"$or": []bson.M{
			{"location_id": ""},
			{"location_id": bson.M{"$exists": false}},
			{"location_id": locationID},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve menu steps: %w", err)
	}
	defer cursor.Close(ctx)

	var steps []models.MenuStep
	for cursor.Next(ctx) {
		var step models.MenuStep
		if err := cursor.Decode(&step); err != nil {
			return nil, fmt.Errorf("failed to decode menu step: %w", err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// GetStep retrieves one step by its ID.
func (r *MongoMenuRepo) GetStep(tenantID, stepID string) (*models.MenuStep, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var step models.MenuStep
	if err := r.coll.FindOne(ctx, bson.M{"tenant_id": tenantID, "id": stepID}).Decode(&step); err != nil {
		return nil, fmt.Errorf("failed to fetch menu step %s: %w", stepID, err)
	}
	return &step, nil
}

// UpsertStep inserts or replaces a step document.
func (r *MongoMenuRepo) UpsertStep(step *models.MenuStep) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if step.CreatedAt.IsZero() {
		step.CreatedAt = now
	}
	step.UpdatedAt = now

	filter := bson.M{"tenant_id": step.TenantID, "id": step.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, step, opts); err != nil {
		return fmt.Errorf("failed to upsert menu step %s: %w", step.ID, err)
	}
	return nil
}

// DeleteStep removes a step document by its ID.
func (r *MongoMenuRepo) DeleteStep(tenantID, stepID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"tenant_id": tenantID, "id": stepID})
	if err != nil {
		return fmt.Errorf("failed to delete menu step %s: %w", stepID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("menu step %s not found", stepID)
	}
	return nil
}
