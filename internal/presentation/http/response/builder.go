package response

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Additional-Code/storehouse/internal/pagination"
	"github.com/Additional-Code/storehouse/pkg/errorbank"
)

// Builder helps construct consistent HTTP responses.
type Builder struct {
	ctx     echo.Context
	status  int
	message string
	results any
	page    *pagination.Page
	err     error
}

// New instantiates a Builder for the provided request context.
func New(ctx echo.Context) *Builder {
	return &Builder{ctx: ctx, status: http.StatusOK}
}

// WithStatus overrides the success status code.
func (b *Builder) WithStatus(status int) *Builder {
	if status > 0 {
		b.status = status
	}
	return b
}

// WithMessage sets the human readable message of a successful response.
func (b *Builder) WithMessage(message string) *Builder {
	b.message = message
	return b
}

// WithResults attaches a success payload.
func (b *Builder) WithResults(results any) *Builder {
	b.results = results
	return b
}

// WithPage renders the results inside the paginated wrapper.
func (b *Builder) WithPage(page pagination.Page) *Builder {
	b.page = &page
	return b
}

// WithError records an error to be rendered.
func (b *Builder) WithError(err error) *Builder {
	b.err = err
	return b
}

// Build finalises and emits the HTTP response.
func (b *Builder) Build() error {
	if b.err != nil {
		return b.buildError()
	}
	if b.page != nil {
		return b.buildPage()
	}
	return b.buildSuccess()
}

func (b *Builder) buildSuccess() error {
	payload := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Results any    `json:"results,omitempty"`
	}{
		Success: true,
		Message: b.message,
		Results: b.results,
	}
	return b.ctx.JSON(b.status, payload)
}

func (b *Builder) buildPage() error {
	next, previous := b.page.Links(b.requestURL())
	payload := struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  any     `json:"results"`
		Success  bool    `json:"success"`
		Message  string  `json:"message"`
	}{
		Count:    b.page.Count,
		Next:     next,
		Previous: previous,
		Results:  b.results,
		Success:  true,
		Message:  b.message,
	}
	return b.ctx.JSON(b.status, payload)
}

// Every failure is a flat 400 regardless of its kind.
func (b *Builder) buildError() error {
	appErr := errorbank.From(b.err)
	payload := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		Success: false,
		Message: appErr.Message(),
	}
	return b.ctx.JSON(http.StatusBadRequest, payload)
}

func (b *Builder) requestURL() *url.URL {
	req := b.ctx.Request()
	u := *req.URL
	u.Scheme = b.ctx.Scheme()
	u.Host = req.Host
	return &u
}
