package dto

import (
	"garage/internal/domains/testimonial/model"
	"garage/shared"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=255"`
	Rating       int    `json:"rating"        validate:"required,min=1,max=5"`
	Comment      string `json:"comment"       validate:"required"`
	ServiceType  string `json:"service_type"  validate:"omitempty,max=255"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	return model.Testimonial{
		ID:           uuid.NewString(),
		CustomerName: c.CustomerName,
		Rating:       c.Rating,
		Comment:      c.Comment,
		ServiceType:  c.ServiceType,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	Rating      int    `db:"rating"       json:"rating"       validate:"omitempty,min=1,max=5"`
	Comment     string `db:"comment"      json:"comment"      validate:"omitempty"`
	ServiceType string `db:"service_type" json:"service_type" validate:"omitempty,max=255"`
}

type TestimonialResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ServiceType  string `json:"service_type"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.ServiceType = model.ServiceType
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
