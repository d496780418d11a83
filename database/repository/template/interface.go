package templateRepo

import (
	"context"

	"classalloc/database"
	"classalloc/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository interface {
	Create(ctx context.Context, tpl models.Template) (*models.Template, error)
	ListActive(ctx context.Context) ([]models.Template, error)
	EnsureIndexes() error
}

type mongoTemplateRepo struct {
	coll *mongo.Collection
}

func NewMongoTemplateRepo() TemplateRepository {
	return &mongoTemplateRepo{coll: database.DB().Collection("templates")}
}
