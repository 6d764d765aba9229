package customer

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

	"github.com/Additional-Code/storehouse/internal/database"
	"github.com/Additional-Code/storehouse/internal/entity"
	"github.com/Additional-Code/storehouse/internal/observability"
	"github.com/Additional-Code/storehouse/internal/pagination"
	repo "github.com/Additional-Code/storehouse/internal/repository/customer"
	"github.com/Additional-Code/storehouse/internal/security"
	"github.com/Additional-Code/storehouse/pkg/clock"
	"github.com/Additional-Code/storehouse/pkg/errorbank"
	"github.com/Additional-Code/storehouse/pkg/optional"
)

const (
	msgInvalidUserID = "Invalid User ID"
	msgUserMissing   = "User matching query does not exist."
	msgDuplicateUser = "A user with that username already exists."
	msgInvalidPage   = "Invalid page."
)

var (
	serviceTracer = otel.Tracer("github.com/Additional-Code/storehouse/service/customer")
	serviceMeter  = otel.Meter("github.com/Additional-Code/storehouse/service/customer")
)

// Registration carries the fields required to open a customer account.
type Registration struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// Changes lists the profile fields a customer update may touch. Absent fields are
// left as stored.
type Changes struct {
	Email     optional.Value[string]
	FirstName optional.Value[string]
	LastName  optional.Value[string]
	Address   optional.Value[string]
	Phone     optional.Value[string]
}

func (c Changes) nullField() string {
	switch {
	case c.Email.IsNull():
		return "email"
	case c.FirstName.IsNull():
		return "first_name"
	case c.LastName.IsNull():
		return "last_name"
	case c.Address.IsNull():
		return "address"
	case c.Phone.IsNull():
		return "phone"
	}
	return ""
}

// Service encapsulates business logic around customers.
type Service struct {
	repo    *repo.Repository
	hasher  security.PasswordHasher
	clock   clock.Clock
	logger  *zap.Logger
	created metric.Int64Counter
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository *repo.Repository
	Hasher     security.PasswordHasher
	Clock      clock.Clock
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:    p.Repository,
		hasher:  p.Hasher,
		clock:   p.Clock,
		logger:  p.Logger,
		created: observability.Counter(serviceMeter, "storehouse.customers.created", "Customers created", p.Logger),
	}
}

// Create opens a new customer account with a hashed password.
func (s *Service) Create(ctx context.Context, reg Registration) (*entity.Customer, error) {
	if reg.Username == "" || reg.Password == "" {
		return nil, errorbank.ValidationFailure("username and password are required")
	}
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Create", trace.WithAttributes(attribute.String("customer.username", reg.Username)))
	defer span.End()

	digest, err := s.hasher.Hash(reg.Password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "hash failed")
		return nil, errorbank.Internal("failed to secure password", errorbank.WithCause(err))
	}

	customer := &entity.Customer{
		Account: entity.Account{
			Username:   reg.Username,
			Password:   digest,
			Email:      reg.Email,
			FirstName:  reg.FirstName,
			LastName:   reg.LastName,
			IsActive:   true,
			DateJoined: s.clock.Now(),
		},
		Address: reg.Address,
		Phone:   reg.Phone,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errorbank.ValidationFailure(msgDuplicateUser, errorbank.WithCause(err))
		}
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("customer insert failed", zap.String("username", reg.Username), zap.Error(err))
		return nil, errorbank.Internal("failed to create customer", errorbank.WithCause(err))
	}

	s.created.Add(ctx, 1)
	s.logger.Info("customer created", zap.Int64("id", customer.ID), zap.String("username", customer.Username))
	return customer, nil
}

// Update applies the supplied profile changes to customer id.
func (s *Service) Update(ctx context.Context, id int64, changes Changes) (*entity.Customer, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Update", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer, err := s.load(ctx, id, msgInvalidUserID)
	if err != nil {
		return nil, err
	}

	if field := changes.nullField(); field != "" {
		return nil, errorbank.ValidationFailure(field + " may not be null")
	}

	changes.Email.Apply(&customer.Email)
	changes.FirstName.Apply(&customer.FirstName)
	changes.LastName.Apply(&customer.LastName)
	changes.Address.Apply(&customer.Address)
	changes.Phone.Apply(&customer.Phone)

	if err := s.repo.Update(ctx, customer); err != nil {
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("customer update failed", zap.Int64("id", id), zap.Error(err))
		return nil, errorbank.Internal("failed to update customer", errorbank.WithCause(err))
	}
	return customer, nil
}

// Get retrieves a customer by id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Customer, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Get", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	return s.load(ctx, id, msgUserMissing)
}

// Delete removes a customer and every product it owns.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Delete", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound(msgUserMissing)
		}
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("customer delete failed", zap.Int64("id", id), zap.Error(err))
		return errorbank.Internal("failed to delete customer", errorbank.WithCause(err))
	}

	s.logger.Info("customer deleted", zap.Int64("id", id))
	return nil
}

// List returns the requested page of customers in ascending id order.
func (s *Service) List(ctx context.Context, pageToken string) ([]entity.Customer, pagination.Page, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.List")
	defer span.End()

	count, err := s.repo.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "repository error")
		return nil, pagination.Page{}, errorbank.Internal("failed to count customers", errorbank.WithCause(err))
	}

	page, err := pagination.Resolve(pageToken, pagination.PageSize, count)
	if err != nil {
		return nil, pagination.Page{}, errorbank.BadRequest(msgInvalidPage, errorbank.WithCause(err))
	}

	customers, err := s.repo.List(ctx, page.Offset(), page.Size)
	if err != nil {
		span.SetStatus(codes.Error, "repository error")
		return nil, pagination.Page{}, errorbank.Internal("failed to list customers", errorbank.WithCause(err))
	}
	return customers, page, nil
}

func (s *Service) load(ctx context.Context, id int64, missing string) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound(missing)
		}
		s.logger.Error("customer lookup failed", zap.Int64("id", id), zap.Error(err))
		return nil, errorbank.Internal("failed to load customer", errorbank.WithCause(err))
	}
	return customer, nil
}
