package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	shopsCollection    = "shops"
	productsCollection = "products"
)

// Connection wraps the document store client and database handle.
// It is created once at process start and shared by the repositories.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to the document store and ensures the collection
// indexes exist.
func NewConnection(ctx context.Context, uri, database string) (*Connection, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	c := &Connection{
		client: client,
		db:     client.Database(database),
	}

	if err := c.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return c, nil
}

// ensureIndexes declares the static index set for all collections.
func (c *Connection) ensureIndexes(ctx context.Context) error {
	shopIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}
	if _, err := c.db.Collection(shopsCollection).Indexes().CreateMany(ctx, shopIndexes); err != nil {
		return fmt.Errorf("failed to create shop indexes: %w", err)
	}

	productIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "shop_id", Value: 1}}},
	}
	if _, err := c.db.Collection(productsCollection).Indexes().CreateMany(ctx, productIndexes); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}

	return nil
}

// Shops returns the shops collection handle.
func (c *Connection) Shops() *mongo.Collection {
	return c.db.Collection(shopsCollection)
}

// Products returns the products collection handle.
func (c *Connection) Products() *mongo.Collection {
	return c.db.Collection(productsCollection)
}

// Close disconnects the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
