package database

import (
	"context"
	"errors"

	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCategoryRepo struct {
	coll *mongo.Collection
}

func NewMongoCategoryRepo(coll *mongo.Collection) *MongoCategoryRepo {
	return &MongoCategoryRepo{coll}
}

// FindAll returns categories in insertion order (ObjectIDs increase monotonically)
func (r *MongoCategoryRepo) FindAll(ctx context.Context) ([]*models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errs.NewDatastoreError("find", "categories", err)
	}
	defer cursor.Close(ctx)

	categories := make([]*models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errs.NewDatastoreError("decode", "categories", err)
	}
	return categories, nil
}

func (r *MongoCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFound("Category")
	}
	if err != nil {
		return nil, errs.NewDatastoreError("find", "category", err)
	}
	return &category, nil
}

func (r *MongoCategoryRepo) Add(ctx context.Context, category *models.Category) error {
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return errs.NewDatastoreError("create", "category", err)
	}
	return nil
}
