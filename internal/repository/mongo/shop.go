package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dtroode/marketplace-server/internal/model"
)

var _ model.ShopStore = (*ShopRepository)(nil)

type ShopRepository struct {
	db *Connection
}

func NewShopRepository(db *Connection) *ShopRepository {
	return &ShopRepository{
		db: db,
	}
}

type shopDocument struct {
	ID           bson.ObjectID     `bson:"_id,omitempty"`
	Name         string            `bson:"name"`
	Address      string            `bson:"address"`
	PhoneNumbers []string          `bson:"phone_numbers,omitempty"`
	Emails       []string          `bson:"emails,omitempty"`
	Links        map[string]string `bson:"links,omitempty"`
	OwnerID      string            `bson:"owner_id"`
	CreatedAt    time.Time         `bson:"created_at"`
	UpdatedAt    time.Time         `bson:"updated_at"`
}

func (d shopDocument) toModel() (model.Shop, error) {
	ownerID, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return model.Shop{}, fmt.Errorf("malformed owner id in shop document: %w", err)
	}

	return model.Shop{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Address:      d.Address,
		PhoneNumbers: d.PhoneNumbers,
		Emails:       d.Emails,
		Links:        d.Links,
		OwnerID:      ownerID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func shopDocumentFromModel(shop model.Shop) shopDocument {
	return shopDocument{
		Name:         shop.Name,
		Address:      shop.Address,
		PhoneNumbers: shop.PhoneNumbers,
		Emails:       shop.Emails,
		Links:        shop.Links,
		OwnerID:      shop.OwnerID.String(),
		CreatedAt:    shop.CreatedAt,
		UpdatedAt:    shop.UpdatedAt,
	}
}

// parseObjectID parses a client-supplied hex id. A malformed id cannot reference any
// document and is reported as not found.
func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, model.ErrNotFound
	}
	return oid, nil
}

func (r *ShopRepository) Create(ctx context.Context, shop model.Shop) (model.Shop, error) {
	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	res, err := r.db.Shops().InsertOne(ctx, shopDocumentFromModel(shop))
	if err != nil {
		return model.Shop{}, fmt.Errorf("failed to create shop: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return model.Shop{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	shop.ID = oid.Hex()

	return shop, nil
}

func (r *ShopRepository) GetByID(ctx context.Context, id string) (model.Shop, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Shop{}, err
	}

	var doc shopDocument
	err = r.db.Shops().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Shop{}, model.ErrNotFound
		}
		return model.Shop{}, fmt.Errorf("failed to get shop by id: %w", err)
	}

	return doc.toModel()
}

func (r *ShopRepository) List(ctx context.Context, page model.PageParams) ([]model.Shop, error) {
	return r.find(ctx, bson.M{}, page)
}

func (r *ShopRepository) SearchByName(ctx context.Context, name string, page model.PageParams) ([]model.Shop, error) {
	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}}
	return r.find(ctx, filter, page)
}

func (r *ShopRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.PageParams) ([]model.Shop, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID.String()}, page)
}

func (r *ShopRepository) find(ctx context.Context, filter bson.M, page model.PageParams) ([]model.Shop, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.db.Shops().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	var docs []shopDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode shops: %w", err)
	}

	shops := make([]model.Shop, 0, len(docs))
	for _, doc := range docs {
		shop, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, nil
}

func (r *ShopRepository) Update(ctx context.Context, id string, ownerID uuid.UUID, update model.ShopUpdate) (model.Shop, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Shop{}, err
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.PhoneNumbers != nil {
		set["phone_numbers"] = *update.PhoneNumbers
	}
	if update.Emails != nil {
		set["emails"] = *update.Emails
	}
	if update.Links != nil {
		set["links"] = *update.Links
	}

	// The filter carries both id and owner: a foreign shop is indistinguishable
	// from a missing one.
	filter := bson.M{"_id": oid, "owner_id": ownerID.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc shopDocument
	err = r.db.Shops().FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Shop{}, model.ErrNotFound
		}
		return model.Shop{}, fmt.Errorf("failed to update shop: %w", err)
	}

	return doc.toModel()
}

func (r *ShopRepository) Delete(ctx context.Context, id string, ownerID uuid.UUID) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.db.Shops().DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID.String()})
	if err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
