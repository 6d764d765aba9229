package database

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Additional-Code/storehouse/internal/entity"
)

// CreateSchema creates the customers and products tables when absent. Products
// reference their owner with ON DELETE CASCADE.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewCreateTable().
		Model((*entity.Customer)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create customers: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*entity.Product)(nil)).
		IfNotExists().
		ForeignKey("(?) REFERENCES ? (?) ON DELETE CASCADE",
			bun.Ident("owner_id"), bun.Ident("customers"), bun.Ident("id")).
		Exec(ctx); err != nil {
		return fmt.Errorf("create products: %w", err)
	}
	return nil
}

// DropSchema removes both tables, dependents first.
func DropSchema(ctx context.Context, db bun.IDB) error {
	if _, err := db.NewDropTable().Model((*entity.Product)(nil)).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("drop products: %w", err)
	}
	if _, err := db.NewDropTable().Model((*entity.Customer)(nil)).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("drop customers: %w", err)
	}
	return nil
}
