package product

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storehouse/internal/catalog"
	"github.com/Additional-Code/storehouse/internal/database"
	"github.com/Additional-Code/storehouse/internal/entity"
	"github.com/Additional-Code/storehouse/internal/observability"
	"github.com/Additional-Code/storehouse/internal/pagination"
	customerrepo "github.com/Additional-Code/storehouse/internal/repository/customer"
	repo "github.com/Additional-Code/storehouse/internal/repository/product"
	"github.com/Additional-Code/storehouse/pkg/clock"
	"github.com/Additional-Code/storehouse/pkg/errorbank"
	"github.com/Additional-Code/storehouse/pkg/optional"
)

const (
	msgInvalidCustomer = "Invalid Customer ID"
	msgNoProduct       = "No Product with this ID"
	msgProductMissing  = "Product matching query does not exist."
	msgInvalidPage     = "Invalid page."
)

var (
	serviceTracer = otel.Tracer("github.com/Additional-Code/storehouse/service/product")
	serviceMeter  = otel.Meter("github.com/Additional-Code/storehouse/service/product")
)

// Draft carries the fields of a product creation request. Nil fields fall back to
// the column defaults.
type Draft struct {
	CustomerID *int64
	Name       *string
	Price      *float64
	Quantity   *int
}

// Changes lists the fields a product update may touch.
type Changes struct {
	Name     optional.Value[string]
	Price    optional.Value[float64]
	Quantity optional.Value[int]
	Status   optional.Value[bool]
}

func (c Changes) nullField() string {
	switch {
	case c.Name.IsNull():
		return "product_name"
	case c.Price.IsNull():
		return "product_price"
	case c.Quantity.IsNull():
		return "product_quantity"
	case c.Status.IsNull():
		return "product_status"
	}
	return ""
}

// Service encapsulates business logic around products.
type Service struct {
	repo        *repo.Repository
	customers   *customerrepo.Repository
	clock       clock.Clock
	logger      *zap.Logger
	created     metric.Int64Counter
	deactivated metric.Int64Counter
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Customers  *customerrepo.Repository
	Clock      clock.Clock
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:        p.Repository,
		customers:   p.Customers,
		clock:       p.Clock,
		logger:      p.Logger,
		created:     observability.Counter(serviceMeter, "storehouse.products.created", "Products created", p.Logger),
		deactivated: observability.Counter(serviceMeter, "storehouse.products.deactivated", "Products deactivated by age", p.Logger),
	}
}

// Create stores a product owned by an existing customer and assigns the next
// code number.
func (s *Service) Create(ctx context.Context, draft Draft) (*entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Create")
	defer span.End()

	if draft.CustomerID == nil {
		return nil, errorbank.InvalidReference(msgInvalidCustomer)
	}
	ownerID := *draft.CustomerID
	span.SetAttributes(attribute.Int64("product.owner_id", ownerID))

	exists, err := s.customers.Exists(ctx, ownerID)
	if err != nil {
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("customer lookup failed", zap.Int64("customer_id", ownerID), zap.Error(err))
		return nil, errorbank.Internal("failed to resolve customer", errorbank.WithCause(err))
	}
	if !exists {
		return nil, errorbank.InvalidReference(msgInvalidCustomer)
	}

	latest, err := s.repo.Latest(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load latest product", errorbank.WithCause(err))
	}

	code, err := catalog.NextCodeNumber(latest)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "code generation failed")
		s.logger.Error("next product code unavailable", zap.Int64("latest_id", latest.ID), zap.Error(err))
		return nil, errorbank.ValidationFailure("cannot derive the next product code number", errorbank.WithCause(err))
	}

	product := &entity.Product{
		CodeNumber:  code,
		BuildupDate: s.clock.Now(),
		Status:      true,
		OwnerID:     &ownerID,
	}
	if draft.Name != nil {
		product.Name = *draft.Name
	}
	if draft.Price != nil {
		product.Price = *draft.Price
	}
	if draft.Quantity != nil {
		product.Quantity = *draft.Quantity
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if database.IsUniqueViolation(err) {
			s.logger.Warn("product code collision", zap.String("code", code), zap.Error(err))
			return nil, errorbank.ValidationFailure("product code number "+code+" is already assigned", errorbank.WithCause(err))
		}
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("product insert failed", zap.String("code", code), zap.Error(err))
		return nil, errorbank.Internal("failed to create product", errorbank.WithCause(err))
	}

	s.created.Add(ctx, 1)
	s.logger.Info("product created", zap.Int64("id", product.ID), zap.String("code", product.CodeNumber), zap.Int64("owner_id", ownerID))
	return product, nil
}

// Update re-derives the status of product id from its age and then applies the
// supplied changes, so an explicit product_status wins over the derived one.
func (s *Service) Update(ctx context.Context, id int64, changes Changes) (*entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := s.load(ctx, id, msgNoProduct)
	if err != nil {
		return nil, err
	}

	if field := changes.nullField(); field != "" {
		return nil, errorbank.ValidationFailure(field + " may not be null")
	}

	wasActive := product.Status
	product.Status = catalog.DeriveStatus(product.BuildupDate, product.Status, s.clock.Now())
	if wasActive && !product.Status {
		s.deactivated.Add(ctx, 1)
		s.logger.Info("product deactivated by age", zap.Int64("id", id), zap.Time("buildup_date", product.BuildupDate))
	}

	changes.Name.Apply(&product.Name)
	changes.Price.Apply(&product.Price)
	changes.Quantity.Apply(&product.Quantity)
	changes.Status.Apply(&product.Status)

	if err := s.repo.Update(ctx, product); err != nil {
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("product update failed", zap.Int64("id", id), zap.Error(err))
		return nil, errorbank.Internal("failed to update product", errorbank.WithCause(err))
	}
	return product, nil
}

// Get retrieves a product by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Get", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	return s.load(ctx, id, msgProductMissing)
}

// Delete removes product id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound(msgProductMissing)
		}
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("product delete failed", zap.Int64("id", id), zap.Error(err))
		return errorbank.Internal("failed to delete product", errorbank.WithCause(err))
	}

	s.logger.Info("product deleted", zap.Int64("id", id))
	return nil
}

// List returns the requested page of products in ascending id order.
func (s *Service) List(ctx context.Context, pageToken string) ([]entity.Product, pagination.Page, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.List")
	defer span.End()

	count, err := s.repo.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "repository error")
		return nil, pagination.Page{}, errorbank.Internal("failed to count products", errorbank.WithCause(err))
	}

	page, err := pagination.Resolve(pageToken, pagination.PageSize, count)
	if err != nil {
		return nil, pagination.Page{}, errorbank.BadRequest(msgInvalidPage, errorbank.WithCause(err))
	}

	products, err := s.repo.List(ctx, page.Offset(), page.Size)
	if err != nil {
		span.SetStatus(codes.Error, "repository error")
		return nil, pagination.Page{}, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}
	return products, page, nil
}

func (s *Service) load(ctx context.Context, id int64, missing string) (*entity.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound(missing)
		}
		s.logger.Error("product lookup failed", zap.Int64("id", id), zap.Error(err))
		return nil, errorbank.Internal("failed to load product", errorbank.WithCause(err))
	}
	return product, nil
}
