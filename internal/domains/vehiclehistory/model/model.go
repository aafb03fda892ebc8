package model

import (
	"time"

	"garage/shared/model"
)

const (
	TableName  = "vehicle_history"
	EntityName = "vehicle_history"

	FieldID            = "id"
	FieldVehicleNumber = "vehicle_number"
	FieldCustomerName  = "customer_name"
	FieldServiceType   = "service_type"
	FieldServiceDate   = "service_date"
	FieldCost          = "cost"
	FieldNotes         = "notes"
	FieldBookingID     = "booking_id"
)

// VehicleHistory is an append-only service record for a vehicle. Rows are
// created directly by staff or appended automatically when a booking
// finishes.
type VehicleHistory struct {
	ID            string    `db:"id"`
	VehicleNumber string    `db:"vehicle_number"`
	CustomerName  string    `db:"customer_name"`
	ServiceType   string    `db:"service_type"`
	ServiceDate   time.Time `db:"service_date"`
	Cost          float64   `db:"cost"`
	Notes         string    `db:"notes"`
	BookingID     string    `db:"booking_id"`
	model.Metadata
}
