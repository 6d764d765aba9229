package seeder

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	customerrepo "github.com/Additional-Code/storehouse/internal/repository/customer"
	customersvc "github.com/Additional-Code/storehouse/internal/service/customer"
	productsvc "github.com/Additional-Code/storehouse/internal/service/product"
)

// DemoUsername identifies the account created by the seeder.
const DemoUsername = "demo"

// Module provides the Seeder to Fx.
var Module = fx.Provide(New)

type sampleProduct struct {
	name     string
	price    float64
	quantity int
}

var demoProducts = []sampleProduct{
	{name: "Widget", price: 9.99, quantity: 25},
	{name: "Gadget", price: 24.5, quantity: 10},
	{name: "Gizmo", price: 3.75, quantity: 120},
}

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	lookup    *customerrepo.Repository
	customers *customersvc.Service
	products  *productsvc.Service
	logger    *zap.Logger
}

// New constructs a Seeder that writes through the regular services so seeded
// rows get hashed passwords and generated product codes.
func New(lookup *customerrepo.Repository, customers *customersvc.Service, products *productsvc.Service, logger *zap.Logger) *Seeder {
	return &Seeder{lookup: lookup, customers: customers, products: products, logger: logger}
}

// Demo creates the demo customer and its products unless the customer already
// exists.
func (s *Seeder) Demo(ctx context.Context) error {
	_, err := s.lookup.GetByUsername(ctx, DemoUsername)
	if err == nil {
		s.logger.Info("demo data already present", zap.String("username", DemoUsername))
		return nil
	}
	if !errors.Is(err, customerrepo.ErrNotFound) {
		return fmt.Errorf("lookup demo customer: %w", err)
	}

	owner, err := s.customers.Create(ctx, customersvc.Registration{
		Username:  DemoUsername,
		Password:  "demo-password",
		Email:     "demo@storehouse.local",
		FirstName: "Demo",
		LastName:  "Customer",
		Address:   "1 Warehouse Row",
		Phone:     "+10000000000",
	})
	if err != nil {
		return fmt.Errorf("seed demo customer: %w", err)
	}

	for _, sample := range demoProducts {
		name, price, quantity := sample.name, sample.price, sample.quantity
		if _, err := s.products.Create(ctx, productsvc.Draft{
			CustomerID: &owner.ID,
			Name:       &name,
			Price:      &price,
			Quantity:   &quantity,
		}); err != nil {
			return fmt.Errorf("seed product %s: %w", name, err)
		}
	}

	s.logger.Info("seeded demo data", zap.Int64("customer_id", owner.ID), zap.Int("products", len(demoProducts)))
	return nil
}
