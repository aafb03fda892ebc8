package dto

import (
	"garage/internal/domains/inventory/model"
	"garage/shared"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type CreateInventoryRequest struct {
	Name     string  `json:"name"      validate:"required,max=255"`
	Category string  `json:"category"  validate:"omitempty,max=100"`
	Stock    int     `json:"stock"     validate:"omitempty,gte=0"`
	MinStock int     `json:"min_stock" validate:"omitempty,gte=0"`
	Price    float64 `json:"price"     validate:"omitempty,gte=0"`
	Location string  `json:"location"  validate:"omitempty,max=100"`
}

func (c *CreateInventoryRequest) ToModel(user string) model.Inventory {
	return model.Inventory{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Category: c.Category,
		Stock:    c.Stock,
		MinStock: c.MinStock,
		Price:    c.Price,
		Location: c.Location,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateInventoryRequest struct {
	Name     string  `db:"name"      json:"name"      validate:"omitempty,max=255"`
	Category string  `db:"category"  json:"category"  validate:"omitempty,max=100"`
	Stock    int     `db:"stock"     json:"stock"     validate:"omitempty,gte=0"`
	MinStock int     `db:"min_stock" json:"min_stock" validate:"omitempty,gte=0"`
	Price    float64 `db:"price"     json:"price"     validate:"omitempty,gte=0"`
	Location string  `db:"location"  json:"location"  validate:"omitempty,max=100"`
}

type InventoryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"min_stock"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	LowStock bool    `json:"low_stock"`
	gDto.Metadata
}

func (r *InventoryResponse) FromModel(model model.Inventory) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Stock = model.Stock
	r.MinStock = model.MinStock
	r.Price = model.Price
	r.Location = model.Location
	r.LowStock = model.LowStock()
	r.Metadata.FromModel(model.Metadata)
}

type GetInventoriesResponse struct {
	Items     []InventoryResponse `json:"items"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetInventoriesResponse) FromModels(models []model.Inventory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]InventoryResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
