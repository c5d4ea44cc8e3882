package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

func (r *MongoRepository) CreateCertificate(ctx context.Context, cert *model.Certificate) error {
	_, err := r.Certificates.InsertOne(ctx, cert)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetCertificate(ctx context.Context, id string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.Certificates.FindOne(ctx, bson.M{"_id": id}).Decode(&cert)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *MongoRepository) GetCertificateByNumber(ctx context.Context, number string) (*model.Certificate, error) {
	var cert model.Certificate
	err := r.Certificates.FindOne(ctx, bson.M{"number": number}).Decode(&cert)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *MongoRepository) FindCertificates(ctx context.Context, filter model.CertificateFilter) ([]*model.Certificate, int64, error) {
	query := bson.M{}
	if filter.FarmerID != "" {
		query["farmer_id"] = filter.FarmerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.Certificates.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((filter.Page - 1) * filter.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "issued_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Size))

	cursor, err := r.Certificates.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var certs []*model.Certificate
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, 0, err
	}

	return certs, total, nil
}

// RevokeCertificate is conditional on the certificate still being ACTIVE, so
// a double revoke surfaces as ErrStatusConflict rather than silently passing.
func (r *MongoRepository) RevokeCertificate(ctx context.Context, id, revokedBy, reason string) error {
	filter := bson.M{
		"_id":    id,
		"status": model.CertStatusActive,
	}

	update := bson.M{
		"$set": bson.M{
			"status":        model.CertStatusRevoked,
			"revoked_at":    time.Now(),
			"revoked_by":    revokedBy,
			"revoke_reason": reason,
		},
	}

	res, err := r.Certificates.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}
