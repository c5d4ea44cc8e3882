package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/model"
)

func (r *MongoRepository) CreateSurvey(ctx context.Context, survey *model.Survey) error {
	now := time.Now()
	survey.CreatedAt = now
	survey.UpdatedAt = now

	_, err := r.Surveys.InsertOne(ctx, survey)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetSurvey(ctx context.Context, id string) (*model.Survey, error) {
	filter := bson.M{
		"_id":        id,
		"deleted_at": nil,
	}

	var survey model.Survey
	err := r.Surveys.FindOne(ctx, filter).Decode(&survey)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &survey, nil
}

func (r *MongoRepository) FindSurveys(ctx context.Context, filter model.SurveyFilter) ([]*model.Survey, int64, error) {
	query := bson.M{
		"deleted_at": nil,
	}
	if filter.FarmerID != "" {
		query["farmer_id"] = filter.FarmerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Province != "" {
		query["province"] = filter.Province
	}

	total, err := r.Surveys.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((filter.Page - 1) * filter.Size)
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Size))

	cursor, err := r.Surveys.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var surveys []*model.Survey
	if err := cursor.All(ctx, &surveys); err != nil {
		return nil, 0, err
	}

	return surveys, total, nil
}

// SaveSurveyStep persists one wizard step conditionally on the survey still
// being editable. A vanished match means the status changed underneath the
// caller, so it maps to ErrStatusConflict.
func (r *MongoRepository) SaveSurveyStep(ctx context.Context, id, stepKey string, data model.StepData, currentStep int, allowedStatuses []string) error {
	filter := bson.M{
		"_id":        id,
		"deleted_at": nil,
		"status":     bson.M{"$in": allowedStatuses},
	}

	update := bson.M{
		"$set": bson.M{
			"steps." + stepKey: data,
			"current_step":     currentStep,
			"updated_at":       time.Now(),
		},
	}

	res, err := r.Surveys.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}

// TransitionSurveyStatus applies a workflow transition with a conditional
// update on the expected current status. Two racing writers cannot both win.
func (r *MongoRepository) TransitionSurveyStatus(ctx context.Context, id string, from []string, to string, update TransitionUpdate) error {
	filter := bson.M{
		"_id":        id,
		"deleted_at": nil,
		"status":     bson.M{"$in": from},
	}

	now := time.Now()
	set := bson.M{
		"status":     to,
		"updated_at": now,
	}
	if update.ReviewerID != nil {
		set["reviewer_id"] = *update.ReviewerID
	}
	if update.ReviewComment != nil {
		set["review_comment"] = *update.ReviewComment
	}
	if update.SubmittedAt != nil {
		set["submitted_at"] = *update.SubmittedAt
	}
	if update.ReviewedAt != nil {
		set["reviewed_at"] = *update.ReviewedAt
	}
	if update.CurrentStep != nil {
		set["current_step"] = *update.CurrentStep
	}

	mongoUpdate := bson.M{"$set": set}
	if update.IncRevision {
		mongoUpdate["$inc"] = bson.M{"revision_count": 1}
	}

	res, err := r.Surveys.UpdateOne(ctx, filter, mongoUpdate)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *MongoRepository) SoftDeleteSurvey(ctx context.Context, id, farmerID, deletedBy string) error {
	filter := bson.M{
		"_id":        id,
		"farmer_id":  farmerID,
		"status":     model.StatusDraft,
		"deleted_at": nil,
	}

	update := bson.M{
		"$set": bson.M{
			"deleted_at": time.Now(),
			"deleted_by": deletedBy,
		},
	}

	res, err := r.Surveys.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrStatusConflict
	}
	return nil
}
