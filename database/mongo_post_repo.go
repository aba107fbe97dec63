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

type MongoPostRepo struct {
	coll *mongo.Collection
}

func NewMongoPostRepo(coll *mongo.Collection) *MongoPostRepo {
	return &MongoPostRepo{coll}
}

func (r *MongoPostRepo) FindAll(ctx context.Context, publishedOnly bool) ([]*models.Post, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errs.NewDatastoreError("find", "posts", err)
	}
	defer cursor.Close(ctx)

	posts := make([]*models.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errs.NewDatastoreError("decode", "posts", err)
	}
	return posts, nil
}

func (r *MongoPostRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NewNotFound("Post")
	}
	if err != nil {
		return nil, errs.NewDatastoreError("find", "post", err)
	}
	return &post, nil
}

func (r *MongoPostRepo) Add(ctx context.Context, post *models.Post) error {
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return errs.NewDatastoreError("create", "post", err)
	}
	return nil
}

func (r *MongoPostRepo) Update(ctx context.Context, id string, fields Fields) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return errs.NewDatastoreError("update", "post", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("Post")
	}
	return nil
}

func (r *MongoPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errs.NewDatastoreError("delete", "post", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("Post")
	}
	return nil
}
