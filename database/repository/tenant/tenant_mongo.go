package tenantRepo

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

// MongoTenantRepo implements TenantRepository using MongoDB.
type MongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo creates a new instance of TenantRepository using MongoDB.
func NewMongoTenantRepo() TenantRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("tenants")
	repo := &MongoTenantRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTenantRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetBySlug retrieves a tenant by its URL slug.
func (r *MongoTenantRepo) GetBySlug(slug string) (*models.Tenant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tenant models.Tenant
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&tenant); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tenant with slug %s: %w", slug, err)
	}
	return &tenant, nil
}

// GetByID retrieves a tenant by its unique ID.
func (r *MongoTenantRepo) GetByID(id string) (*models.Tenant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tenant models.Tenant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tenant); err != nil {
		return nil, fmt.Errorf("failed to fetch tenant with id %s: %w", id, err)
	}
	return &tenant, nil
}

// GetAll retrieves all tenants.
func (r *MongoTenantRepo) GetAll() ([]models.Tenant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tenants: %w", err)
	}
	defer cursor.Close(ctx)

	var tenants []models.Tenant
	for cursor.Next(ctx) {
		var t models.Tenant
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	return tenants, nil
}

// Create inserts a new tenant document.
func (r *MongoTenantRepo) Create(tenant *models.Tenant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tenant); err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return nil
}

// Update modifies an existing tenant document.
func (r *MongoTenantRepo) Update(tenant *models.Tenant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tenant.UpdatedAt = time.Now()
	filter := bson.M{"id": tenant.ID}
	update := bson.M{"$set": tenant}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update tenant with id %s: %w", tenant.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tenant with id %s not found", tenant.ID)
	}
	return nil
}

// Delete removes a tenant document by its ID.
func (r *MongoTenantRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tenant with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("tenant with id %s not found", id)
	}
	return nil
}
