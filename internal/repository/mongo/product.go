package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dtroode/marketplace-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

type productDocument struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Name           string        `bson:"name"`
	Brand          string        `bson:"brand"`
	Model          string        `bson:"model"`
	Description    string        `bson:"description"`
	Price          float64       `bson:"price"`
	AvailableSizes []string      `bson:"available_sizes,omitempty"`
	Colors         []string      `bson:"colors,omitempty"`
	Rating         *float64      `bson:"rating,omitempty"`
	ImageKey       string        `bson:"image_key,omitempty"`
	ShopID         string        `bson:"shop_id"`
	OwnerID        string        `bson:"owner_id"`
	CreatedAt      time.Time     `bson:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at"`
}

func (d productDocument) toModel() (model.Product, error) {
	ownerID, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return model.Product{}, fmt.Errorf("malformed owner id in product document: %w", err)
	}

	return model.Product{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Brand:          d.Brand,
		Model:          d.Model,
		Description:    d.Description,
		Price:          d.Price,
		AvailableSizes: d.AvailableSizes,
		Colors:         d.Colors,
		Rating:         d.Rating,
		ImageKey:       d.ImageKey,
		ShopID:         d.ShopID,
		OwnerID:        ownerID,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

func productDocumentFromModel(product model.Product) productDocument {
	return productDocument{
		Name:           product.Name,
		Brand:          product.Brand,
		Model:          product.Model,
		Description:    product.Description,
		Price:          product.Price,
		AvailableSizes: product.AvailableSizes,
		Colors:         product.Colors,
		Rating:         product.Rating,
		ImageKey:       product.ImageKey,
		ShopID:         product.ShopID,
		OwnerID:        product.OwnerID.String(),
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.db.Products().InsertOne(ctx, productDocumentFromModel(product))
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return model.Product{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	product.ID = oid.Hex()

	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (model.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Product{}, err
	}

	var doc productDocument
	err = r.db.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return doc.toModel()
}

func (r *ProductRepository) List(ctx context.Context, page model.PageParams) ([]model.Product, error) {
	return r.find(ctx, bson.M{}, page)
}

func (r *ProductRepository) ListByShop(ctx context.Context, shopID string, page model.PageParams) ([]model.Product, error) {
	return r.find(ctx, bson.M{"shop_id": shopID}, page)
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, page model.PageParams) ([]model.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.db.Products().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, ownerID uuid.UUID, update model.ProductUpdate) (model.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Product{}, err
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Brand != nil {
		set["brand"] = *update.Brand
	}
	if update.Model != nil {
		set["model"] = *update.Model
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.AvailableSizes != nil {
		set["available_sizes"] = *update.AvailableSizes
	}
	if update.Colors != nil {
		set["colors"] = *update.Colors
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}

	filter := bson.M{"_id": oid, "owner_id": ownerID.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc productDocument
	err = r.db.Products().FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return doc.toModel()
}

func (r *ProductRepository) SetImageKey(ctx context.Context, id string, ownerID uuid.UUID, imageKey string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": oid, "owner_id": ownerID.String()}
	set := bson.M{"image_key": imageKey, "updated_at": time.Now()}

	res, err := r.db.Products().UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to set product image key: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string, ownerID uuid.UUID) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.db.Products().DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID.String()})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
