package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// table describes how a catalog entity maps onto its table. Column names
// match the entity's db tags; id and the creation column are handled
// separately so updates never touch them.
type table struct {
	name    string
	columns []string
	created string
	orderBy string
}

func (t table) selectSQL() string {
	cols := append([]string{"id"}, t.columns...)
	cols = append(cols, t.created)
	return "SELECT " + strings.Join(cols, ", ") + " FROM " + t.name
}

func (t table) insertSQL() string {
	cols := append([]string{"id"}, t.columns...)
	cols = append(cols, t.created)
	named := make([]string, len(cols))
	for i, c := range cols {
		named[i] = ":" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(cols, ", "), strings.Join(named, ", "))
}

func (t table) updateSQL() string {
	sets := make([]string, len(t.columns))
	for i, c := range t.columns {
		sets[i] = c + " = :" + c
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", t.name, strings.Join(sets, ", "))
}

var (
	teamsTable = table{
		name:    "teams",
		columns: []string{"name", "description", "logo_url", "members", "gender", "game_type", "game_logo"},
		created: "created_at",
		orderBy: "created_at DESC",
	}
	eventsTable = table{
		name:    "events",
		columns: []string{"name", "location", "date", "description"},
		created: "created_at",
		orderBy: "date DESC NULLS LAST, created_at DESC",
	}
	staffTable = table{
		name:    "staff",
		columns: []string{"name", "position", "bio", "photo_url"},
		created: "created_at",
		orderBy: "created_at DESC",
	}
	leadershipTable = table{
		name:    "leadership",
		columns: staffTable.columns,
		created: "created_at",
		orderBy: "created_at DESC",
	}
	sponsorsTable = table{
		name:    "sponsors",
		columns: []string{"name", "logo_url", "link"},
		created: "created_at",
		orderBy: "created_at DESC",
	}
)

// CatalogRepository is the sqlx implementation of ports.CatalogRepository
// for any entity whose db tags match its table.
type CatalogRepository[T any] struct {
	db *sqlx.DB
	t  table
}

func newCatalogRepository[T any](db *Database, t table) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db.DB, t: t}
}

func NewEventRepository(db *Database) *CatalogRepository[domain.Event] {
	return newCatalogRepository[domain.Event](db, eventsTable)
}

func NewStaffRepository(db *Database) *CatalogRepository[domain.Member] {
	return newCatalogRepository[domain.Member](db, staffTable)
}

func NewLeadershipRepository(db *Database) *CatalogRepository[domain.Member] {
	return newCatalogRepository[domain.Member](db, leadershipTable)
}

func NewSponsorRepository(db *Database) *CatalogRepository[domain.Sponsor] {
	return newCatalogRepository[domain.Sponsor](db, sponsorsTable)
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	query := r.t.selectSQL() + " ORDER BY " + r.t.orderBy
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, domain.StoreFailure("list "+r.t.name, err)
	}
	return items, nil
}

func (r *CatalogRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	var item T
	err := r.db.GetContext(ctx, &item, r.t.selectSQL()+" WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.StoreFailure("get "+r.t.name, err)
	}
	return &item, nil
}

func (r *CatalogRepository[T]) Create(ctx context.Context, rec *T) error {
	if _, err := r.db.NamedExecContext(ctx, r.t.insertSQL(), rec); err != nil {
		return domain.StoreFailure("insert "+r.t.name, err)
	}
	return nil
}

// Update rewrites every mutable column. rec must carry the target id.
func (r *CatalogRepository[T]) Update(ctx context.Context, rec *T) error {
	if identified, ok := any(rec).(interface{ RecordID() string }); ok && !validID(identified.RecordID()) {
		return domain.ErrNotFound
	}
	res, err := r.db.NamedExecContext(ctx, r.t.updateSQL(), rec)
	if err != nil {
		return domain.StoreFailure("update "+r.t.name, err)
	}
	return expectOneRow(res, "update "+r.t.name)
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+r.t.name+" WHERE id = $1", id)
	if err != nil {
		return domain.StoreFailure("delete "+r.t.name, err)
	}
	return expectOneRow(res, "delete "+r.t.name)
}

// TeamRepository adds the game-type projection.
type TeamRepository struct {
	*CatalogRepository[domain.Team]
}

func NewTeamRepository(db *Database) *TeamRepository {
	return &TeamRepository{CatalogRepository: newCatalogRepository[domain.Team](db, teamsTable)}
}

func (r *TeamRepository) GameTypes(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT game_type
		FROM teams
		WHERE game_type <> ''
		ORDER BY game_type`

	var types []string
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, domain.StoreFailure("list game types", err)
	}
	return types, nil
}

func expectOneRow(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.StoreFailure(op, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
