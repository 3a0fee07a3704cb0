package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// CatalogRepository stores one entity type per collection. Entities carry
// bson tags with the id mapped to _id.
type CatalogRepository[T any] struct {
	coll      *mongo.Collection
	sortField string
	// immutable fields are stripped from update documents.
	immutable []string
	// optional fields are omitempty in bson and get unset when absent.
	optional []string
}

func newCatalogRepository[T any](s *Store, collection, sortField string) *CatalogRepository[T] {
	return &CatalogRepository[T]{
		coll:      s.DB.Collection(collection),
		sortField: sortField,
		immutable: []string{"_id", "created_at"},
	}
}

func NewEventRepository(s *Store) *CatalogRepository[domain.Event] {
	r := newCatalogRepository[domain.Event](s, collectionEvents, "date")
	r.optional = []string{"date"}
	return r
}

func NewStaffRepository(s *Store) *CatalogRepository[domain.Member] {
	return newCatalogRepository[domain.Member](s, collectionStaff, "created_at")
}

func NewLeadershipRepository(s *Store) *CatalogRepository[domain.Member] {
	return newCatalogRepository[domain.Member](s, collectionLeadership, "created_at")
}

func NewSponsorRepository(s *Store) *CatalogRepository[domain.Sponsor] {
	return newCatalogRepository[domain.Sponsor](s, collectionSponsors, "created_at")
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: r.sortField, Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list "+r.coll.Name(), err)
	}
	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return nil, storeErr("decode "+r.coll.Name(), err)
	}
	return items, nil
}

func (r *CatalogRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item T
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get "+r.coll.Name(), err)
	}
	return &item, nil
}

func (r *CatalogRepository[T]) Create(ctx context.Context, rec *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return storeErr("insert "+r.coll.Name(), err)
	}
	return nil
}

func (r *CatalogRepository[T]) Update(ctx context.Context, rec *T) error {
	id, update, err := r.updateDoc(rec)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return storeErr("update "+r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete "+r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// updateDoc converts rec into an update document that replaces every mutable
// field, unsetting optional fields rec leaves empty, and returns the id
// separately.
func (r *CatalogRepository[T]) updateDoc(rec *T) (any, bson.M, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return nil, nil, fmt.Errorf("encode %s: %w", r.coll.Name(), err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	id := doc["_id"]
	for _, f := range r.immutable {
		delete(doc, f)
	}
	update := bson.M{"$set": doc}
	unset := bson.M{}
	for _, f := range r.optional {
		if _, ok := doc[f]; !ok {
			unset[f] = ""
		}
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return id, update, nil
}

type TeamRepository struct {
	*CatalogRepository[domain.Team]
}

func NewTeamRepository(s *Store) *TeamRepository {
	return &TeamRepository{CatalogRepository: newCatalogRepository[domain.Team](s, collectionTeams, "created_at")}
}

func (r *TeamRepository) GameTypes(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "game_type", bson.M{"game_type": bson.M{"$ne": ""}})
	if err != nil {
		return nil, storeErr("list game types", err)
	}
	types := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			types = append(types, s)
		}
	}
	sort.Strings(types)
	return types, nil
}
