package podRepo

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

// MongoPodRepo implements PodRepository using MongoDB.
type MongoPodRepo struct {
	coll *mongo.Collection
}

// NewMongoPodRepo creates a new instance of PodRepository using MongoDB.
func NewMongoPodRepo() PodRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("pods")
	repo := &MongoPodRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPodRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "location_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new pod document.
func (r *MongoPodRepo) Create(pod *models.Pod) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pod.UpdatedAt = time.Now()
	if pod.Status == "" {
		pod.Status = models.PodAvailable
	}
	if _, err := r.coll.InsertOne(ctx, pod); err != nil {
		return fmt.Errorf("failed to create pod: %w", err)
	}
	return nil
}

// GetByID retrieves a pod by its ID within a tenant.
func (r *MongoPodRepo) GetByID(tenantID, podID string) (*models.Pod, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pod models.Pod
	if err := r.coll.FindOne(ctx, bson.M{"tenant_id": tenantID, "id": podID}).Decode(&pod); err != nil {
		return nil, fmt.Errorf("failed to fetch pod %s: %w", podID, err)
	}
	return &pod, nil
}

// ListByLocation retrieves the pod board for one location.
func (r *MongoPodRepo) ListByLocation(tenantID, locationID string) ([]models.Pod, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "label", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID, "location_id": locationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve pods: %w", err)
	}
	defer cursor.Close(ctx)

	var pods []models.Pod
	for cursor.Next(ctx) {
		var p models.Pod
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode pod: %w", err)
		}
		pods = append(pods, p)
	}
	return pods, nil
}

// SetStatus transitions a pod conditionally on its current status.
func (r *MongoPodRepo) SetStatus(tenantID, podID string, from, to models.PodStatus, orderID string) (*models.Pod, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"tenant_id": tenantID, "id": podID, "status": from}
	set := bson.M{"status": to, "updated_at": time.Now()}
	update := bson.M{"$set": set}
	if to == models.PodReserved || to == models.PodOccupied {
		if orderID != "" {
			set["order_id"] = orderID
		}
	} else if to == models.PodAvailable {
		update["$unset"] = bson.M{"order_id": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pod models.Pod
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&pod); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("pod %s is no longer %s", podID, from)
		}
		return nil, fmt.Errorf("failed to transition pod %s: %w", podID, err)
	}
	return &pod, nil
}

// Delete removes a pod document.
func (r *MongoPodRepo) Delete(tenantID, podID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"tenant_id": tenantID, "id": podID})
	if err != nil {
		return fmt.Errorf("failed to delete pod %s: %w", podID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("pod %s not found", podID)
	}
	return nil
}
