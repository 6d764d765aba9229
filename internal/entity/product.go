package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Product is an inventory record. CodeNumber and BuildupDate are written once on
// insert and never updated.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID          int64     `bun:",pk,autoincrement"`
	Name        string    `bun:"product_name,notnull"`
	CodeNumber  string    `bun:"product_code_number,notnull,unique"`
	BuildupDate time.Time `bun:"buildup_date,notnull"`
	Price       float64   `bun:"product_price,notnull,default:0"`
	Quantity    int       `bun:"product_quantity,notnull,default:0"`
	Status      bool      `bun:"product_status,notnull,default:true"`
	OwnerID     *int64    `bun:"owner_id"`
}
