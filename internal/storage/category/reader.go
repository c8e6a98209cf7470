package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const tableName = "categories"

var tableColumns = []any{
	"id", "user_id", "name", "description", "color", "icon",
	"budget_cents", "is_active", "created_at", "updated_at",
}

var _ ITable = (*Reader)(nil)

// Reader answers category queries against any executor (pool or tx).
type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (r *Reader) FindByUserAndName(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	return r.findOne(ctx,
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
}

func (r *Reader) findOne(ctx context.Context, mods ...bob.Mod[*dialect.SelectQuery]) (*Category, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(tableColumns...),
		sm.From(tableName),
	}, mods...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*categoryRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToCategory(row), nil
}

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(tableColumns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*categoryRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result, nil
}
