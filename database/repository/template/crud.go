package templateRepo

import (
	"context"
	"fmt"
	"time"

	"classalloc/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTemplateRepo) Create(ctx context.Context, tpl models.Template) (*models.Template, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	tpl.IsActive = true
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tpl); err != nil {
		return nil, fmt.Errorf("error creating template: %w", err)
	}
	return &tpl, nil
}

func (r *mongoTemplateRepo) ListActive(ctx context.Context) ([]models.Template, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "department", Value: 1}, {Key: "subject", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("error decoding templates: %w", err)
	}
	return templates, nil
}

func (r *mongoTemplateRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "building", Value: 1}, {Key: "floor", Value: 1}, {Key: "room", Value: 1}, {Key: "dayOfWeek", Value: 1}}},
		{Keys: bson.D{{Key: "createdBy", Value: 1}}},
		{Keys: bson.D{{Key: "department", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create template indexes: %w", err)
	}
	return nil
}
