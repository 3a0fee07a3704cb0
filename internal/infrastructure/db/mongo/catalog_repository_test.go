package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

func TestUpdateDocStripsImmutableFields(t *testing.T) {
	r := &CatalogRepository[domain.Team]{immutable: []string{"_id", "created_at"}}
	team := &domain.Team{
		ID:        "t-1",
		Name:      "Alpha",
		Gender:    domain.GenderMixed,
		CreatedAt: time.Now(),
	}

	id, update, err := r.updateDoc(team)
	require.NoError(t, err)
	assert.Equal(t, "t-1", id)
	set := update["$set"].(bson.M)
	assert.Equal(t, "Alpha", set["name"])
	assert.NotContains(t, set, "_id")
	assert.NotContains(t, set, "created_at")
	assert.NotContains(t, update, "$unset")
}

func TestUpdateDocUnsetsMissingEventDate(t *testing.T) {
	r := &CatalogRepository[domain.Event]{immutable: []string{"_id", "created_at"}, optional: []string{"date"}}
	_, update, err := r.updateDoc(&domain.Event{ID: "e-1", Name: "LAN"})
	require.NoError(t, err)
	assert.NotContains(t, update["$set"].(bson.M), "date")
	assert.Equal(t, bson.M{"date": ""}, update["$unset"])
}

func TestUpdateDocSetsEventDate(t *testing.T) {
	r := &CatalogRepository[domain.Event]{immutable: []string{"_id", "created_at"}, optional: []string{"date"}}
	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, update, err := r.updateDoc(&domain.Event{ID: "e-1", Name: "LAN", Date: &when})
	require.NoError(t, err)
	assert.Contains(t, update["$set"].(bson.M), "date")
	assert.NotContains(t, update, "$unset")
}
