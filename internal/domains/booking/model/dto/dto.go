package dto

import (
	"garage/internal/domains/booking/model"
	"garage/internal/domains/invoice"
	"garage/pricing"
	"garage/shared"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/failure"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerName  string  `json:"customer_name"  validate:"required,max=255"`
	VehicleNumber string  `json:"vehicle_number" validate:"required,max=50"`
	VehicleType   string  `json:"vehicle_type"   validate:"omitempty,max=100"`
	ServiceType   string  `json:"service_type"   validate:"required,max=255"`
	BookingDate   string  `json:"booking_date"   validate:"required"`
	BookingTime   string  `json:"booking_time"   validate:"required"`
	Status        string  `json:"status"         validate:"omitempty"`
	Phone         string  `json:"phone"          validate:"omitempty,max=20"`
	Email         string  `json:"email"          validate:"omitempty,email,max=255"`
	Description   string  `json:"description"    validate:"omitempty"`
	EstimatedCost float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
}

// ToModel builds the persisted booking. A missing cost defaults from the
// price table; a missing status starts the booking in the waiting queue as
// customer submissions always did.
func (c *CreateBookingRequest) ToModel(user string, prices *pricing.PriceTable) (model.Booking, error) {
	bookingDate, err := timezone.Parse(constant.DateOnlyFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("booking_date must be formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if _, err := timezone.Parse(constant.TimeOnlyFormat, c.BookingTime); err != nil {
		return model.Booking{}, failure.BadRequestFromString("booking_time must be formatted as HH:MM") //nolint:wrapcheck
	}

	status := model.StatusWaiting
	if c.Status != "" {
		parsed, ok := model.ParseStatus(c.Status)
		if !ok {
			return model.Booking{}, failure.BadRequestFromString("unknown booking status: " + c.Status) //nolint:wrapcheck
		}

		status = parsed
	}

	cost := c.EstimatedCost
	if cost == 0 {
		cost = prices.EstimatedCost(c.ServiceType)
	}

	return model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  c.CustomerName,
		VehicleNumber: c.VehicleNumber,
		VehicleType:   c.VehicleType,
		ServiceType:   c.ServiceType,
		BookingDate:   bookingDate,
		BookingTime:   c.BookingTime,
		Status:        status,
		Phone:         c.Phone,
		Email:         c.Email,
		Description:   c.Description,
		EstimatedCost: cost,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest carries the mutable booking fields. Status is not
// updatable here; lifecycle moves go through the status transition endpoint
// so illegal jumps are rejected.
type UpdateBookingRequest struct {
	CustomerName  string  `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=255"`
	VehicleNumber string  `db:"vehicle_number" json:"vehicle_number" validate:"omitempty,max=50"`
	VehicleType   string  `db:"vehicle_type"   json:"vehicle_type"   validate:"omitempty,max=100"`
	ServiceType   string  `db:"service_type"   json:"service_type"   validate:"omitempty,max=255"`
	BookingTime   string  `db:"booking_time"   json:"booking_time"   validate:"omitempty"`
	Phone         string  `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	Email         string  `db:"email"          json:"email"          validate:"omitempty,email,max=255"`
	Description   string  `db:"description"    json:"description"    validate:"omitempty"`
	EstimatedCost float64 `db:"estimated_cost" json:"estimated_cost" validate:"omitempty,gte=0"`
	Notes         string  `db:"notes"          json:"notes"          validate:"omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customer_name"`
	VehicleNumber string  `json:"vehicle_number"`
	VehicleType   string  `json:"vehicle_type"`
	ServiceType   string  `json:"service_type"`
	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"status_label"`
	Payable       bool    `json:"payable"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	Notes         string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.VehicleNumber = model.VehicleNumber
	r.VehicleType = model.VehicleType
	r.ServiceType = model.ServiceType
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.BookingTime = model.BookingTime
	r.Status = model.Status.String()
	r.StatusLabel = model.Status.Label()
	r.Payable = model.Status.Payable()
	r.Phone = model.Phone
	r.Email = model.Email
	r.Description = model.Description
	r.EstimatedCost = model.EstimatedCost
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

// InvoiceResponse carries the derived invoice together with its printable
// document and the prefilled payment chat link.
type InvoiceResponse struct {
	Invoice     invoice.Invoice `json:"invoice"`
	Document    string          `json:"document"`
	WhatsAppURL string          `json:"whatsapp_url"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
