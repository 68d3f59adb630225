package mockquerier

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// Querier mocks the repository's database seam. Interface compliance is
// asserted in the repository tests to avoid an import cycle here.
type Querier struct {
	mock.Mock
}

func (m *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	callArgs := []any{ctx, sql}
	callArgs = append(callArgs, args...)
	res := m.Called(callArgs...)
	if v := res.Get(0); v != nil {
		return v.(pgx.Rows), res.Error(1)
	}
	return nil, res.Error(1)
}

func (m *Querier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	res := m.Called(ctx, b)
	return res.Get(0).(pgx.BatchResults)
}

// Rows is an in-memory pgx.Rows yielding preset values. Fixture values may be
// plain scalars even where the scan target is a pointer; Scan allocates as
// needed, and a nil fixture value maps to a NULL column.
type Rows struct {
	Data   [][]any
	RowErr error

	idx int
}

var _ pgx.Rows = &Rows{}

func (r *Rows) Next() bool {
	if r.idx >= len(r.Data) {
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	row := r.Data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan expects %d destinations, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		if err := assign(d, row[i]); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

func (r *Rows) Close()                                       {}
func (r *Rows) Err() error                                   { return r.RowErr }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) Values() ([]any, error)                       { return nil, nil }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }

func assign(dest, src any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer")
	}
	ev := dv.Elem()

	if src == nil {
		ev.Set(reflect.Zero(ev.Type()))
		return nil
	}

	sv := reflect.ValueOf(src)
	switch {
	case sv.Type().AssignableTo(ev.Type()):
		ev.Set(sv)
	case ev.Kind() == reflect.Ptr && sv.Type().AssignableTo(ev.Type().Elem()):
		p := reflect.New(ev.Type().Elem())
		p.Elem().Set(sv)
		ev.Set(p)
	case ev.Kind() != reflect.Ptr && sv.Type().ConvertibleTo(ev.Type()):
		ev.Set(sv.Convert(ev.Type()))
	case ev.Kind() == reflect.Ptr && sv.Type().ConvertibleTo(ev.Type().Elem()):
		p := reflect.New(ev.Type().Elem())
		p.Elem().Set(sv.Convert(ev.Type().Elem()))
		ev.Set(p)
	default:
		return fmt.Errorf("cannot assign %T to %s", src, ev.Type())
	}
	return nil
}

// BatchResults mocks pgx.BatchResults for CreateNotifications tests.
type BatchResults struct {
	mock.Mock
}

var _ pgx.BatchResults = &BatchResults{}

func (m *BatchResults) Exec() (pgconn.CommandTag, error) {
	args := m.Called()
	return pgconn.CommandTag{}, args.Error(1)
}

func (m *BatchResults) Query() (pgx.Rows, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(pgx.Rows), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BatchResults) QueryRow() pgx.Row {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.(pgx.Row)
	}
	return nil
}

func (m *BatchResults) Close() error {
	return m.Called().Error(0)
}
