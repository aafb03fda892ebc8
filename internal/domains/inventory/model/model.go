package model

import "garage/shared/model"

const (
	TableName  = "inventory"
	EntityName = "inventory"

	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldStock    = "stock"
	FieldMinStock = "min_stock"
	FieldPrice    = "price"
	FieldLocation = "location"
)

type Inventory struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Category string  `db:"category"`
	Stock    int     `db:"stock"`
	MinStock int     `db:"min_stock"`
	Price    float64 `db:"price"`
	Location string  `db:"location"`
	model.Metadata
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i Inventory) LowStock() bool {
	return i.Stock <= i.MinStock
}
