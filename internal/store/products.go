package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/database"
	"github.com/shivanshrider/HROne-Backend-Intern-Hiring-Task/internal/models"
)

type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{coll: db.Collection("products")}
}

// ProductFilter narrows a product listing. Name matches case-insensitively
// on substring, Size matches exactly; both combine with AND, zero values
// impose no constraint.
type ProductFilter struct {
	Name string
	Size string
}

func productQuery(f ProductFilter) bson.M {
	query := bson.M{}
	if f.Name != "" {
		query["name"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.Size != "" {
		query["size"] = f.Size
	}
	return query
}

func (s *ProductStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	doc, err := newProductDoc(p)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	result, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	p.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &p, nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, database.ErrProductNotFound)
	}

	var doc productDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, database.ErrProductNotFound)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	product, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

// Exists reports whether a product document with the given hex id is present.
// A malformed id cannot reference any document and reports false.
func (s *ProductStore) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return true, nil
}

func (s *ProductStore) List(ctx context.Context, filter ProductFilter, opts ListOptions) ([]models.Product, error) {
	opts = opts.normalized()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(opts.Offset).
		SetLimit(opts.Limit)

	cursor, err := s.coll.Find(ctx, productQuery(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}
