package model

import "garage/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID           = "id"
	FieldCustomerName = "customer_name"
	FieldRating       = "rating"
	FieldComment      = "comment"
	FieldServiceType  = "service_type"
)

type Testimonial struct {
	ID           string `db:"id"`
	CustomerName string `db:"customer_name"`
	Rating       int    `db:"rating"`
	Comment      string `db:"comment"`
	ServiceType  string `db:"service_type"`
	model.Metadata
}
