package transaction

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

const tableName = "transactions"

var tableColumns = []any{
	"id", "user_id", "category_id", "amount_cents", "type",
	"description", "date", "created_at", "updated_at",
}

var _ ITable = (*Reader)(nil)

// Reader answers transaction queries against any executor (pool or tx).
type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (r *Reader) findOne(ctx context.Context, mods ...bob.Mod[*dialect.SelectQuery]) (*Transaction, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(tableColumns...),
		sm.From(tableName),
	}, mods...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*transactionRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToTransaction(row), nil
}

// filterMods translates a Filter into WHERE mods. Shared by List and Count
// so both always agree on the row set.
func filterMods(filter *Filter) []bob.Mod[*dialect.SelectQuery] {
	var mods []bob.Mod[*dialect.SelectQuery]
	if filter == nil {
		return mods
	}

	mods = append(mods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))))
	if filter.CategoryID != nil {
		mods = append(mods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.Type != nil {
		mods = append(mods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*filter.Type)))))
	}
	if filter.DateFrom != nil {
		mods = append(mods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		mods = append(mods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.DateTo))))
	}
	if filter.Search != "" {
		mods = append(mods, sm.Where(psql.Raw("description ILIKE ?", "%"+filter.Search+"%")))
	}
	return mods
}

func (r *Reader) List(ctx context.Context, filter *Filter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(tableColumns...),
		sm.From(tableName),
	}
	queryMods = append(queryMods, filterMods(filter)...)

	orderAsc := filter != nil && filter.OrderAsc
	if orderAsc {
		queryMods = append(queryMods, sm.OrderBy("date").Asc(), sm.OrderBy("id").Asc())
	} else {
		queryMods = append(queryMods, sm.OrderBy("date").Desc(), sm.OrderBy("id").Desc())
	}

	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowsToTransactions(rows), nil
}

// Count returns the number of rows matching the filter, ignoring paging.
func (r *Reader) Count(ctx context.Context, filter *Filter) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From(tableName),
	}
	queryMods = append(queryMods, filterMods(filter)...)

	return bob.One(ctx, r.exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

func (r *Reader) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*Transaction, error) {
	return r.listWhere(ctx, sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))))
}

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	return r.listWhere(ctx, sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))))
}

func (r *Reader) listWhere(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(tableColumns...),
		sm.From(tableName),
		where,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowsToTransactions(rows), nil
}

func rowsToTransactions(rows []*transactionRow) []*Transaction {
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result
}
