package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(s *Store) *ApplicationRepository {
	return &ApplicationRepository{coll: s.DB.Collection(collectionApplications)}
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date_submitted", Value: -1}}))
	if err != nil {
		return nil, storeErr("list applications", err)
	}
	var apps []domain.Application
	if err := cur.All(ctx, &apps); err != nil {
		return nil, storeErr("decode applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id string) (*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var app domain.Application
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return storeErr("insert application", err)
	}
	return nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return storeErr("update application status", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, "delete application")
}

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(s *Store) *ContactRepository {
	return &ContactRepository{coll: s.DB.Collection(collectionContact)}
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date_sent", Value: -1}}))
	if err != nil {
		return nil, storeErr("list contact messages", err)
	}
	var msgs []domain.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, storeErr("decode contact messages", err)
	}
	return msgs, nil
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return storeErr("insert contact message", err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, "delete contact message")
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id, op string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr(op, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
