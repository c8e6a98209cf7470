package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IWriter = (*Writer)(nil)

// Writer performs transaction mutations inside a storage transaction.
type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the transaction row for the rest of the
// storage transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(tableName,
			"user_id", "category_id", "amount_cents", "type", "description", "date",
		),
		im.Values(psql.Arg(
			create.UserID, create.CategoryID, create.Amount.Cents(),
			string(create.Type), create.Description, create.Date,
		)),
		im.Returning(tableColumns...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowToTransaction(row), nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, setter *TransactionSetter) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}

	if setter.CategoryID.IsValue() {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(setter.CategoryID.MustGet()))
	}
	if setter.Amount.IsValue() {
		queryMods = append(queryMods, um.SetCol("amount_cents").ToArg(setter.Amount.MustGet().Cents()))
	}
	if setter.Type.IsValue() {
		queryMods = append(queryMods, um.SetCol("type").ToArg(string(setter.Type.MustGet())))
	}
	if setter.Description.IsValue() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(setter.Description.MustGet()))
	}
	if setter.Date.IsValue() {
		queryMods = append(queryMods, um.SetCol("date").ToArg(setter.Date.MustGet()))
	}

	if _, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...)); err != nil {
		return nil, err
	}
	return w.FindByID(ctx, id)
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// CountByCategory reports how many transactions still reference a category.
func (w *Writer) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From(tableName),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
	)
	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[int64])
}

// ReassignCategory re-homes every transaction of fromCategoryID onto
// toCategoryID in a single bulk update and returns the number of rows
// moved.
func (w *Writer) ReassignCategory(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID) (int64, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("category_id").ToArg(toCategoryID),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("category_id").EQ(psql.Arg(fromCategoryID))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
