package entity

import "github.com/uptrace/bun"

// Customer is an account holder that owns products.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID int64 `bun:",pk,autoincrement"`
	Account
	Address string `bun:"address,notnull"`
	Phone   string `bun:"phone,notnull"`
}
