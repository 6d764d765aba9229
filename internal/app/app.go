package app

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/storehouse/internal/config"
	"github.com/Additional-Code/storehouse/internal/database"
	"github.com/Additional-Code/storehouse/internal/logger"
	"github.com/Additional-Code/storehouse/internal/observability"
	repositorycustomer "github.com/Additional-Code/storehouse/internal/repository/customer"
	repositoryproduct "github.com/Additional-Code/storehouse/internal/repository/product"
	"github.com/Additional-Code/storehouse/internal/security"
	grpcserver "github.com/Additional-Code/storehouse/internal/server/grpc"
	httpserver "github.com/Additional-Code/storehouse/internal/server/http"
	servicecustomer "github.com/Additional-Code/storehouse/internal/service/customer"
	serviceproduct "github.com/Additional-Code/storehouse/internal/service/product"
	transporthttp "github.com/Additional-Code/storehouse/internal/transport/http"
	"github.com/Additional-Code/storehouse/pkg/clock"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	database.Module,
	logger.Module,
	observability.Module,
	security.Module,
	fx.Provide(clock.NewRealClock),
	repositorycustomer.Module,
	repositoryproduct.Module,
	servicecustomer.Module,
	serviceproduct.Module,
)

// HTTP wires the HTTP transport and the optional gRPC health server on top of
// the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	grpcserver.Module,
	transporthttp.Module,
)

// Module is the default application wiring.
var Module = HTTP
