package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

// Collections holds the configurable collection names.
type Collections struct {
	Surveys      string
	Certificates string
	Users        string
	Audit        string
}

type MongoRepository struct {
	Surveys      *mongo.Collection
	Certificates *mongo.Collection
	Users        *mongo.Collection
	Audit        *mongo.Collection
	Client       *mongo.Client
}

func NewMongoRepository(db *mongo.Database, colls Collections) *MongoRepository {
	return &MongoRepository{
		Surveys:      db.Collection(colls.Surveys),
		Certificates: db.Collection(colls.Certificates),
		Users:        db.Collection(colls.Users),
		Audit:        db.Collection(colls.Audit),
		Client:       db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. Surveys: listing by farmer and by status
	idxSurveyFarmer := mongo.IndexModel{
		Keys: bson.D{
			{Key: "farmer_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_farmer_created"),
	}
	idxSurveyStatus := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "submitted_at", Value: -1},
		},
		Options: options.Index().SetName("idx_status_submitted"),
	}

	_, err := r.Surveys.Indexes().CreateMany(ctx, []mongo.IndexModel{idxSurveyFarmer, idxSurveyStatus})
	if err != nil {
		return err
	}

	// 2. Certificates: one ACTIVE certificate per survey, unique number
	idxCertSurvey := mongo.IndexModel{
		Keys: bson.D{{Key: "survey_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("uniq_active_cert_per_survey").
			SetPartialFilterExpression(bson.M{
				"status": model.CertStatusActive,
			}),
	}
	idxCertNumber := mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_cert_number"),
	}
	idxCertFarmer := mongo.IndexModel{
		Keys: bson.D{
			{Key: "farmer_id", Value: 1},
			{Key: "issued_at", Value: -1},
		},
		Options: options.Index().SetName("idx_cert_farmer"),
	}

	_, err = r.Certificates.Indexes().CreateMany(ctx, []mongo.IndexModel{idxCertSurvey, idxCertNumber, idxCertFarmer})
	if err != nil {
		return err
	}

	// 3. Users: unique email
	idxUserEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	}

	_, err = r.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{idxUserEmail})
	if err != nil {
		return err
	}

	// 4. Audit: per-survey trail, newest first
	idxAudit := mongo.IndexModel{
		Keys: bson.D{
			{Key: "survey_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_audit_survey_created"),
	}

	_, err = r.Audit.Indexes().CreateMany(ctx, []mongo.IndexModel{idxAudit})
	return err
}
