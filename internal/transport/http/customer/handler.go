package customer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storehouse/internal/dto"
	"github.com/Additional-Code/storehouse/internal/entity"
	"github.com/Additional-Code/storehouse/internal/pagination"
	"github.com/Additional-Code/storehouse/internal/presentation/http/response"
	"github.com/Additional-Code/storehouse/internal/presentation/http/validation"
	service "github.com/Additional-Code/storehouse/internal/service/customer"
	"github.com/Additional-Code/storehouse/internal/transport/http/pathid"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storehouse/transport/http/customer")

// Handler exposes customer endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a customer Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/customer")
	g.POST("/create", h.create)
	g.PATCH("/update/:id", h.update)
	g.GET("/list", h.list)
	g.GET("/detail/:id", h.detail)
	g.DELETE("/delete/:id", h.delete)
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateCustomerRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(validation.BindError(err)).Build()
	}
	if err := c.Validate(&payload); err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.create", trace.WithAttributes(attribute.String("customer.username", payload.Username)))
	defer span.End()

	customer, err := h.svc.Create(ctx, service.Registration{
		Username:  payload.Username,
		Password:  payload.Password,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Address:   payload.Address,
		Phone:     payload.Phone,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("User Created").WithResults(toDTO(customer)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id, err := pathid.Parse(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	var payload dto.UpdateCustomerRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(validation.BindError(err)).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.update", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer, err := h.svc.Update(ctx, id, service.Changes{
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Address:   payload.Address,
		Phone:     payload.Phone,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Profile Updated Successfully").WithResults(toDTO(customer)).Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.list")
	defer span.End()

	customers, page, err := h.svc.List(ctx, c.QueryParam(pagination.QueryParam))
	if err != nil {
		return b.WithError(err).Build()
	}

	results := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		results = append(results, toDTO(&customers[i]))
	}
	return b.WithMessage("List of Customers").WithPage(page).WithResults(results).Build()
}

func (h *Handler) detail(c echo.Context) error {
	b := response.New(c)

	id, err := pathid.Parse(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.detail", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	customer, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Details of Customer").WithResults(toDTO(customer)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	id, err := pathid.Parse(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.delete", trace.WithAttributes(attribute.Int64("customer.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Customer deleted").Build()
}

func toDTO(customer *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:         customer.ID,
		Username:   customer.Username,
		Email:      customer.Email,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Address:    customer.Address,
		Phone:      customer.Phone,
		IsActive:   customer.IsActive,
		DateJoined: customer.DateJoined,
		LastLogin:  customer.LastLogin,
	}
}
