package category

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

// Writer performs category mutations inside a storage transaction.
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

// FindByIDForUpdate locks the category row for the rest of the transaction.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Category, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	var budgetCents *int64
	if create.Budget != nil {
		cents := create.Budget.Cents()
		budgetCents = &cents
	}

	q := psql.Insert(
		im.Into(tableName,
			"user_id", "name", "description", "color", "icon", "budget_cents", "is_active",
		),
		im.Values(psql.Arg(
			create.UserID, create.Name, create.Description, create.Color,
			create.Icon, budgetCents, create.IsActive,
		)),
		im.Returning(tableColumns...),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*categoryRow]())
	if err != nil {
		return nil, err
	}
	return rowToCategory(row), nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, setter *CategorySetter) (*Category, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}

	if setter.Name.IsValue() {
		queryMods = append(queryMods, um.SetCol("name").ToArg(setter.Name.MustGet()))
	}
	if setter.Description.IsValue() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(setter.Description.MustGet()))
	}
	if setter.Color.IsValue() {
		queryMods = append(queryMods, um.SetCol("color").ToArg(setter.Color.MustGet()))
	}
	if setter.Icon.IsValue() {
		queryMods = append(queryMods, um.SetCol("icon").ToArg(setter.Icon.MustGet()))
	}
	if setter.ClearBudget {
		queryMods = append(queryMods, um.SetCol("budget_cents").ToArg(nil))
	} else if setter.Budget.IsValue() {
		queryMods = append(queryMods, um.SetCol("budget_cents").ToArg(setter.Budget.MustGet().Cents()))
	}
	if setter.IsActive.IsValue() {
		queryMods = append(queryMods, um.SetCol("is_active").ToArg(setter.IsActive.MustGet()))
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
