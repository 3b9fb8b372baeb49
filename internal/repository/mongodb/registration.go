package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/logger"
	"jobi-backend/internal/repository"
)

const registrationsCollection = "registrations"

type registrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) repository.RegistrationRepository {
	return &registrationRepository{coll: db.Collection(registrationsCollection)}
}

func (r *registrationRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique phone index: %w", err)
	}
	return nil
}

func (r *registrationRepository) FindByPhone(ctx context.Context, phone string) (*domain.Registration, error) {
	var reg domain.Registration
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&reg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find registration by phone: %w", err)
	}
	return &reg, nil
}

func (r *registrationRepository) Insert(ctx context.Context, reg *domain.Registration) error {
	now := time.Now()
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = now
	}
	reg.CreatedAt = now
	reg.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, reg)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicatePhone
	}
	if err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		reg.ID = id
	}
	logger.Debug("registration inserted", "id", reg.ID.Hex(), "phone", reg.Phone)
	return nil
}

func (r *registrationRepository) UpdateByID(ctx context.Context, id string, fields map[string]any) (*domain.Registration, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var reg domain.Registration
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update registration %s: %w", id, err)
	}
	return &reg, nil
}

func (r *registrationRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete registration %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) List(ctx context.Context, filter repository.Filter, sort repository.Sort, limit int64) ([]domain.Registration, error) {
	opts := options.Find()
	if sort.Field != "" {
		dir := 1
		if sort.Descending {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}})
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var regs []domain.Registration
	if err := cur.All(ctx, &regs); err != nil {
		return nil, fmt.Errorf("failed to decode registrations: %w", err)
	}
	return regs, nil
}

func (r *registrationRepository) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return n, nil
}

func (r *registrationRepository) GroupCount(ctx context.Context, groupKey string, filter repository.Filter, limit int64) ([]repository.GroupCount, error) {
	match := filterQuery(filter)
	// Missing and empty group keys are excluded from grouping.
	match[groupKey] = bson.M{"$exists": true, "$nin": bson.A{nil, ""}}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$" + groupKey, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by %s: %w", groupKey, err)
	}
	defer cur.Close(ctx)

	var out []repository.GroupCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s aggregation: %w", groupKey, err)
	}
	return out, nil
}

func (r *registrationRepository) CountByDay(ctx context.Context, since time.Time) ([]repository.DailyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily counts: %w", err)
	}
	defer cur.Close(ctx)

	var out []repository.DailyCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode daily counts: %w", err)
	}
	return out, nil
}

// filterQuery converts the domain-level filter into a bson query.
func filterQuery(f repository.Filter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if len(f.Types) > 0 {
		q["type"] = bson.M{"$in": f.Types}
	}
	if f.HasEmail {
		q["email"] = bson.M{"$exists": true, "$nin": bson.A{nil, ""}}
	}
	if !f.CreatedOnOrAfter.IsZero() {
		q["created_at"] = bson.M{"$gte": f.CreatedOnOrAfter}
	}
	return q
}
