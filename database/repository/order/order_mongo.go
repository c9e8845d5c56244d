package orderRepo

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

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("orders")
	repo := &MongoOrderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new order document.
func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID within a tenant.
func (r *MongoOrderRepo) GetByID(tenantID, orderID string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"tenant_id": tenantID, "id": orderID}).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	return &order, nil
}

// GetByUser retrieves a user's orders, newest first.
func (r *MongoOrderRepo) GetByUser(tenantID, userID string) ([]models.Order, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID, "user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// UpdateArrival rewrites the estimated arrival and returns the updated order.
func (r *MongoOrderRepo) UpdateArrival(tenantID, orderID string, arrival time.Time) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "id": orderID}
	update := bson.M{"$set": bson.M{"estimated_arrival": arrival, "updated_at": time.Now()}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to update arrival for order %s: %w", orderID, err)
	}
	return &order, nil
}

// UpdateStatus moves an order to a new status.
func (r *MongoOrderRepo) UpdateStatus(tenantID, orderID string, status models.OrderStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "id": orderID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", orderID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", orderID)
	}
	return nil
}
