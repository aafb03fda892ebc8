package model

import (
	"time"

	"garage/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerName  = "customer_name"
	FieldVehicleNumber = "vehicle_number"
	FieldVehicleType   = "vehicle_type"
	FieldServiceType   = "service_type"
	FieldBookingDate   = "booking_date"
	FieldBookingTime   = "booking_time"
	FieldStatus        = "status"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldDescription   = "description"
	FieldEstimatedCost = "estimated_cost"
	FieldNotes         = "notes"
)

type Booking struct {
	ID            string    `db:"id"`
	CustomerName  string    `db:"customer_name"`
	VehicleNumber string    `db:"vehicle_number"`
	VehicleType   string    `db:"vehicle_type"`
	ServiceType   string    `db:"service_type"`
	BookingDate   time.Time `db:"booking_date"`
	BookingTime   string    `db:"booking_time"`
	Status        Status    `db:"status"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
	Description   string    `db:"description"`
	EstimatedCost float64   `db:"estimated_cost"`
	Notes         string    `db:"notes"`
	model.Metadata
}
