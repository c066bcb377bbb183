package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	qb "github.com/riskibarqy/cricviz/internal/platform/querybuilder"
)

const cricketersTable = "cricketers"

type CricketerRepository struct {
	db *sqlx.DB
}

// cricketerSelectColumns follows the field order of cricketerTableModel.
var cricketerSelectColumns = mustColumns(cricketerTableModel{})

func mustColumns(model any) []string {
	cols, err := qb.Columns(model)
	if err != nil {
		panic(fmt.Sprintf("cricketer columns: %v", err))
	}
	return cols
}

func NewCricketerRepository(db *sqlx.DB) *CricketerRepository {
	return &CricketerRepository{db: db}
}

func (r *CricketerRepository) List(ctx context.Context, query cricketer.Query) ([]cricketer.Cricketer, error) {
	sqlQuery, args, err := buildListQuery(query)
	if err != nil {
		return nil, fmt.Errorf("build select cricketers query: %w", err)
	}

	var rows []cricketerTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("select cricketers: %w", err)
	}

	out := make([]cricketer.Cricketer, 0, len(rows))
	for _, row := range rows {
		out = append(out, cricketerFromRow(row))
	}
	return out, nil
}

func (r *CricketerRepository) GetByName(ctx context.Context, name string) (cricketer.Cricketer, bool, error) {
	return r.getByName(ctx, name)
}

func (r *CricketerRepository) GetByNameForUpdate(ctx context.Context, name string) (cricketer.Cricketer, bool, error) {
	return r.getByName(ctx, name)
}

func (r *CricketerRepository) getByName(ctx context.Context, name string) (cricketer.Cricketer, bool, error) {
	query, args, err := qb.Select(cricketerSelectColumns...).From(cricketersTable).
		Where(qb.Eq("name", name)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return cricketer.Cricketer{}, false, fmt.Errorf("build select cricketer by name query: %w", err)
	}

	var row cricketerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return cricketer.Cricketer{}, false, nil
		}
		return cricketer.Cricketer{}, false, fmt.Errorf("get cricketer by name: %w", err)
	}

	return cricketerFromRow(row), true, nil
}

func (r *CricketerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM cricketers`); err != nil {
		return 0, fmt.Errorf("count cricketers: %w", err)
	}
	return count, nil
}

func (r *CricketerRepository) Create(ctx context.Context, c cricketer.Cricketer) (cricketer.Cricketer, error) {
	query, args, err := qb.InsertModel(cricketersTable, insertModelFromCricketer(c), "RETURNING created_at, updated_at")
	if err != nil {
		return cricketer.Cricketer{}, fmt.Errorf("build insert cricketer query: %w", err)
	}

	var ts cricketerTimestamps
	if err := r.db.GetContext(ctx, &ts, query, args...); err != nil {
		return cricketer.Cricketer{}, fmt.Errorf("insert cricketer %s: %w", c.ID, err)
	}

	c.CreatedAt = ts.CreatedAt
	c.UpdatedAt = ts.UpdatedAt
	return c, nil
}

func (r *CricketerRepository) CreateMany(ctx context.Context, items []cricketer.Cricketer) ([]cricketer.Cricketer, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert cricketers tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := make([]cricketer.Cricketer, 0, len(items))
	for _, c := range items {
		query, args, err := qb.InsertModel(cricketersTable, insertModelFromCricketer(c), "RETURNING created_at, updated_at")
		if err != nil {
			return nil, fmt.Errorf("build insert cricketer query: %w", err)
		}

		var ts cricketerTimestamps
		if err := tx.GetContext(ctx, &ts, query, args...); err != nil {
			return nil, fmt.Errorf("insert cricketer %s: %w", c.ID, err)
		}
		c.CreatedAt = ts.CreatedAt
		c.UpdatedAt = ts.UpdatedAt
		out = append(out, c)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert cricketers tx: %w", err)
	}
	return out, nil
}

func (r *CricketerRepository) Update(ctx context.Context, c cricketer.Cricketer) error {
	query, args, err := qb.UpdateModel(cricketersTable, insertModelFromCricketer(c), qb.Eq("public_id", c.ID), "public_id")
	if err != nil {
		return fmt.Errorf("build update cricketer query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update cricketer %s: %w", c.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows update cricketer %s: %w", c.ID, err)
	}
	if affected == 0 {
		return &cricketer.NotFoundError{Name: c.Name}
	}
	return nil
}

func (r *CricketerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(cricketersTable).Where(qb.Eq("public_id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete cricketer query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete cricketer %s: %w", id, err)
	}
	return nil
}

func buildListQuery(query cricketer.Query) (string, []any, error) {
	conditions := make([]qb.Condition, 0, len(query.Countries)+len(query.Roles))
	for _, country := range query.Countries {
		conditions = append(conditions, qb.Eq("country", country))
	}
	for _, role := range query.Roles {
		conditions = append(conditions, qb.Eq("role", string(role)))
	}

	b := qb.Select(cricketerSelectColumns...).From(cricketersTable).Where(conditions...)
	if query.DescendingByMatches {
		b.OrderBy("matches DESC NULLS LAST", "id")
	} else {
		b.OrderBy("id")
	}
	if query.Limit > 0 {
		b.Limit(query.Limit)
	}
	return b.ToSQL()
}

func insertModelFromCricketer(c cricketer.Cricketer) cricketerInsertModel {
	return cricketerInsertModel{
		PublicID:      c.ID,
		Name:          c.Name,
		Country:       nullString(c.Country),
		Role:          nullString(string(c.Role)),
		Matches:       nullInt64(c.Matches),
		InningsBatted: nullInt64(c.InningsBatted),
		NotOut:        nullInt64(c.NotOut),
		RunsScored:    nullInt64(c.RunsScored),
		BallsFaced:    nullInt64(c.BallsFaced),
		HighScore:     nullInt64(c.HighScore),
		Centuries:     nullInt64(c.Centuries),
		HalfCenturies: nullInt64(c.HalfCenturies),
		FoursScored:   nullInt64(c.FoursScored),
		SixesScored:   nullInt64(c.SixesScored),
		InningsBowled: nullInt64(c.InningsBowled),
		BallsBowled:   nullInt64(c.BallsBowled),
		RunsGiven:     nullInt64(c.RunsGiven),
		WicketsTaken:  nullInt64(c.WicketsTaken),
	}
}

func cricketerFromRow(row cricketerTableModel) cricketer.Cricketer {
	return cricketer.Cricketer{
		ID:            row.PublicID,
		Name:          row.Name,
		Country:       row.Country.String,
		Role:          cricketer.Role(row.Role.String),
		Matches:       intPtr(row.Matches),
		InningsBatted: intPtr(row.InningsBatted),
		NotOut:        intPtr(row.NotOut),
		RunsScored:    intPtr(row.RunsScored),
		BallsFaced:    intPtr(row.BallsFaced),
		HighScore:     intPtr(row.HighScore),
		Centuries:     intPtr(row.Centuries),
		HalfCenturies: intPtr(row.HalfCenturies),
		FoursScored:   intPtr(row.FoursScored),
		SixesScored:   intPtr(row.SixesScored),
		InningsBowled: intPtr(row.InningsBowled),
		BallsBowled:   intPtr(row.BallsBowled),
		RunsGiven:     intPtr(row.RunsGiven),
		WicketsTaken:  intPtr(row.WicketsTaken),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
