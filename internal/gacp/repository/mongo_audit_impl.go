package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// CreateAudit appends a new audit record (append-only)
func (r *MongoRepository) CreateAudit(ctx context.Context, record *model.AuditRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.Audit.InsertOne(ctx, record)
	return err
}

// FindAudit returns a survey's audit trail with pagination, newest first
func (r *MongoRepository) FindAudit(ctx context.Context, surveyID string, page, size int) ([]*model.AuditRecord, int64, error) {
	filter := bson.M{"survey_id": surveyID}

	total, err := r.Audit.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(size))

	cursor, err := r.Audit.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []*model.AuditRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
