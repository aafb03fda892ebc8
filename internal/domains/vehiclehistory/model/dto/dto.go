package dto

import (
	"garage/internal/domains/vehiclehistory/model"
	"garage/shared"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type CreateVehicleHistoryRequest struct {
	VehicleNumber string  `json:"vehicle_number" validate:"required,max=50"`
	CustomerName  string  `json:"customer_name"  validate:"required,max=255"`
	ServiceType   string  `json:"service_type"   validate:"required,max=255"`
	ServiceDate   string  `json:"service_date"   validate:"required"`
	Cost          float64 `json:"cost"           validate:"omitempty,gte=0"`
	Notes         string  `json:"notes"          validate:"omitempty"`
	BookingID     string  `json:"booking_id"     validate:"omitempty,uuid"`
}

func (c *CreateVehicleHistoryRequest) ToModel(user string) (model.VehicleHistory, error) {
	serviceDate, err := timezone.Parse(constant.DateOnlyFormat, c.ServiceDate)
	if err != nil {
		return model.VehicleHistory{}, failure.BadRequestFromString("service_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	return model.VehicleHistory{
		ID:            uuid.NewString(),
		VehicleNumber: c.VehicleNumber,
		CustomerName:  c.CustomerName,
		ServiceType:   c.ServiceType,
		ServiceDate:   serviceDate,
		Cost:          c.Cost,
		Notes:         c.Notes,
		BookingID:     c.BookingID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateVehicleHistoryRequest struct {
	CustomerName string  `db:"customer_name" json:"customer_name" validate:"omitempty,max=255"`
	ServiceType  string  `db:"service_type"  json:"service_type"  validate:"omitempty,max=255"`
	Cost         float64 `db:"cost"          json:"cost"          validate:"omitempty,gte=0"`
	Notes        string  `db:"notes"         json:"notes"         validate:"omitempty"`
}

type VehicleHistoryResponse struct {
	ID            string  `json:"id"`
	VehicleNumber string  `json:"vehicle_number"`
	CustomerName  string  `json:"customer_name"`
	ServiceType   string  `json:"service_type"`
	ServiceDate   string  `json:"service_date"`
	Cost          float64 `json:"cost"`
	Notes         string  `json:"notes"`
	BookingID     string  `json:"booking_id"`
	gDto.Metadata
}

func (r *VehicleHistoryResponse) FromModel(model model.VehicleHistory) {
	r.ID = model.ID
	r.VehicleNumber = model.VehicleNumber
	r.CustomerName = model.CustomerName
	r.ServiceType = model.ServiceType
	r.ServiceDate = model.ServiceDate.Format(constant.DateOnlyFormat)
	r.Cost = model.Cost
	r.Notes = model.Notes
	r.BookingID = model.BookingID
	r.Metadata.FromModel(model.Metadata)
}

type GetVehicleHistoriesResponse struct {
	Histories []VehicleHistoryResponse `json:"histories"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetVehicleHistoriesResponse) FromModels(models []model.VehicleHistory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Histories = make([]VehicleHistoryResponse, len(models))
	for i, mod := range models {
		r.Histories[i].FromModel(mod)
	}
}
