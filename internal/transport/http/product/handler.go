package product

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
	service "github.com/Additional-Code/storehouse/internal/service/product"
	"github.com/Additional-Code/storehouse/internal/transport/http/pathid"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storehouse/transport/http/product")

// Handler exposes product endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a product Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/product")
	g.POST("/create", h.create)
	g.PATCH("/update/:id", h.update)
	g.GET("/list", h.list)
	g.GET("/detail/:id", h.detail)
	g.DELETE("/delete/:id", h.delete)
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.CreateProductRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(validation.BindError(err)).Build()
	}
	if err := c.Validate(&payload); err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.create")
	defer span.End()
	if payload.CustomerID != nil {
		span.SetAttributes(attribute.Int64("product.owner_id", *payload.CustomerID))
	}

	product, err := h.svc.Create(ctx, service.Draft{
		CustomerID: payload.CustomerID,
		Name:       payload.Name,
		Price:      payload.Price,
		Quantity:   payload.Quantity,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("Product Created Successfully").WithResults(toDTO(product)).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id, err := pathid.Parse(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	var payload dto.UpdateProductRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(validation.BindError(err)).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.update", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := h.svc.Update(ctx, id, service.Changes{
		Name:     payload.Name,
		Price:    payload.Price,
		Quantity: payload.Quantity,
		Status:   payload.Status,
	})
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Product Updated Successfully").WithResults(toDTO(product)).Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list")
	defer span.End()

	products, page, err := h.svc.List(ctx, c.QueryParam(pagination.QueryParam))
	if err != nil {
		return b.WithError(err).Build()
	}

	results := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		results = append(results, toDTO(&products[i]))
	}
	return b.WithMessage("List of Products").WithPage(page).WithResults(results).Build()
}

func (h *Handler) detail(c echo.Context) error {
	b := response.New(c)

	id, err := pathid.Parse(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.detail", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Product Details").WithResults(toDTO(product)).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	id, err := pathid.Parse(c)
	if err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.delete", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Product deleted").Build()
}

func toDTO(product *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		CodeNumber:  product.CodeNumber,
		BuildupDate: product.BuildupDate,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Status:      product.Status,
		OwnerID:     product.OwnerID,
	}
}
