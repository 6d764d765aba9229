package http

import (
	"go.uber.org/fx"

	customertransport "github.com/Additional-Code/storehouse/internal/transport/http/customer"
	producttransport "github.com/Additional-Code/storehouse/internal/transport/http/product"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	customertransport.Module,
	producttransport.Module,
)
