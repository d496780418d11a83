package auditRepo

import (
	"context"

	"classalloc/database"
	"classalloc/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository persists audit records. Records are append-only: there is
// no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, record models.AuditRecord) (string, error)
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error)
	EnsureIndexes() error
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns a new AuditRepository instance using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	return NewMongoAuditRepoFor(database.DB())
}

func NewMongoAuditRepoFor(db *mongo.Database) AuditRepository {
	return &mongoAuditRepo{coll: db.Collection("audits")}
}
