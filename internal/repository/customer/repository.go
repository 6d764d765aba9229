package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storehouse/internal/database"
	"github.com/Additional-Code/storehouse/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/storehouse/repository/customer")

// ErrNotFound is returned when a customer is missing.
var ErrNotFound = errors.New("customer not found")

// mutableColumns are the only columns Update writes.
var mutableColumns = []string{"email", "first_name", "last_name", "address", "phone"}

// Repository encapsulates read/write access for customers.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// Create persists a new customer; the store assigns the id.
func (r *Repository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Create", trace.WithAttributes(attribute.String("customer.username", customer.Username)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(customer).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// GetByID fetches a customer by primary key using the read replica when available.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.GetByID", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("id = ?", id).Scan(ctx)
	return r.single(span, customer, err)
}

// GetByUsername fetches a customer by its unique username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.GetByUsername", trace.WithAttributes(attribute.String("customer.username", username)))
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("username = ?", username).Scan(ctx)
	return r.single(span, customer, err)
}

// Exists reports whether id resolves. It reads from the writer because callers
// use it right before writing rows that reference the customer.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Exists", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	ok, err := r.writer.NewSelect().Model((*entity.Customer)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
	}
	return ok, err
}

// Update writes the profile columns of an existing customer. Username and
// password are never touched.
func (r *Repository) Update(ctx context.Context, customer *entity.Customer) error {
	if customer == nil {
		return errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Update", trace.WithAttributes(attribute.Int64("customer.id", customer.ID)))
	defer span.End()

	_, err := r.writer.NewUpdate().Model(customer).Column(mutableColumns...).WherePK().Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
	}
	return err
}

// Delete removes a customer together with the products it owns in a single
// transaction.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Delete", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		owned, err := tx.NewDelete().Model((*entity.Product)(nil)).Where("owner_id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := owned.RowsAffected(); err == nil {
			span.SetAttributes(attribute.Int64("customer.products_deleted", n))
		}

		res, err := tx.NewDelete().Model((*entity.Customer)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
	}
	return err
}

// Count returns the number of customers.
func (r *Repository) Count(ctx context.Context) (int, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Count")
	defer span.End()

	n, err := r.reader.NewSelect().Model((*entity.Customer)(nil)).Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count failed")
	}
	return n, err
}

// List returns a window of customers ordered by ascending id.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.List", trace.WithAttributes(
		attribute.Int("list.offset", offset),
		attribute.Int("list.limit", limit),
	))
	defer span.End()

	customers := make([]entity.Customer, 0, limit)
	err := r.reader.NewSelect().Model(&customers).Order("id ASC").Offset(offset).Limit(limit).Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customers, nil
}

func (r *Repository) single(span trace.Span, customer *entity.Customer, err error) (*entity.Customer, error) {
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customer, nil
}
