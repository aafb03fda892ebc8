package dto_test

import (
	"testing"

	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/model/dto"
	"garage/pricing"
	gModel "garage/shared/model"
	"garage/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	prices := pricing.Get()

	t.Run("complete request", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerName:  "Budi Santoso",
			VehicleNumber: "B 1234 CD",
			VehicleType:   "Mobil",
			ServiceType:   "Ganti Oli",
			BookingDate:   "2026-09-01",
			BookingTime:   "09:00",
			Status:        "dikonfirmasi",
			Phone:         "6281111111111",
			Email:         "budi@example.com",
			EstimatedCost: 175000,
		}

		booking, err := req.ToModel("test-user-id", prices)

		assert.NoError(t, err)
		assert.NotEmpty(t, booking.ID, "expected ID to be generated")
		assert.Equal(t, req.CustomerName, booking.CustomerName)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.Equal(t, float64(175000), booking.EstimatedCost)
		assert.Equal(t, "2026-09-01", booking.BookingDate.Format("2006-01-02"))
		assert.Equal(t, "test-user-id", booking.CreatedBy)
		assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
	})

	t.Run("status defaults to waiting", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerName:  "Budi Santoso",
			VehicleNumber: "B 1234 CD",
			ServiceType:   "Ganti Oli",
			BookingDate:   "2026-09-01",
			BookingTime:   "09:00",
		}

		booking, err := req.ToModel("test-user-id", prices)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusWaiting, booking.Status)
	})

	t.Run("cost defaults from the price table", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerName:  "Budi Santoso",
			VehicleNumber: "B 1234 CD",
			ServiceType:   "Ganti Ban",
			BookingDate:   "2026-09-01",
			BookingTime:   "09:00",
		}

		booking, err := req.ToModel("test-user-id", prices)

		assert.NoError(t, err)
		assert.Equal(t, float64(800000), booking.EstimatedCost)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerName:  "Budi Santoso",
			VehicleNumber: "B 1234 CD",
			ServiceType:   "Ganti Oli",
			BookingDate:   "September 1st",
			BookingTime:   "09:00",
		}

		_, err := req.ToModel("test-user-id", prices)

		assert.Error(t, err)
	})

	t.Run("invalid time rejected", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerName:  "Budi Santoso",
			VehicleNumber: "B 1234 CD",
			ServiceType:   "Ganti Oli",
			BookingDate:   "2026-09-01",
			BookingTime:   "9 o'clock",
		}

		_, err := req.ToModel("test-user-id", prices)

		assert.Error(t, err)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			CustomerName:  "Budi Santoso",
			VehicleNumber: "B 1234 CD",
			ServiceType:   "Ganti Oli",
			BookingDate:   "2026-09-01",
			BookingTime:   "09:00",
			Status:        "teleported",
		}

		_, err := req.ToModel("test-user-id", prices)

		assert.Error(t, err)
	})
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingModel := model.Booking{
		ID:            "test-id",
		CustomerName:  "Budi Santoso",
		VehicleNumber: "B 1234 CD",
		VehicleType:   "Mobil",
		ServiceType:   "Ganti Ban",
		BookingDate:   now,
		BookingTime:   "09:00",
		Status:        model.StatusDone,
		EstimatedCost: 800000,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, "done", response.Status)
	assert.Equal(t, "Selesai", response.StatusLabel)
	assert.True(t, response.Payable)
	assert.Equal(t, now.Format("2006-01-02"), response.BookingDate)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "id-1", Status: model.StatusWaiting},
		{ID: "id-2", Status: model.StatusDone},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 12, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.False(t, response.Bookings[0].Payable)
	assert.True(t, response.Bookings[1].Payable)
}
