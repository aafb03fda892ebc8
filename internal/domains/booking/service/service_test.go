package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"garage/config"
	kafkaMocks "garage/infras/kafka/mocks"
	"garage/infras/otel/mocks"
	bookingMocks "garage/internal/domains/booking/mocks"
	"garage/internal/domains/booking/model"
	"garage/internal/domains/booking/model/dto"
	"garage/internal/domains/booking/service"
	vhMocks "garage/internal/domains/vehiclehistory/mocks"
	"garage/pricing"
	cacheMocks "garage/shared/cache/mocks"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/timezone"
)

type bookingMockSet struct {
	repo   *bookingMocks.MockBooking
	vhRepo *vhMocks.MockVehicleHistory
	cache  *cacheMocks.MockRedisCache
	kafka  *kafkaMocks.MockClient
	cfg    *config.Config
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	ctrl := gomock.NewController(t)

	mocksSet := bookingMockSet{
		repo:   bookingMocks.NewMockBooking(ctrl),
		vhRepo: vhMocks.NewMockVehicleHistory(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
		cfg:    &config.Config{},
	}
	mocksSet.cfg.Cache.TTL = 3600
	mocksSet.cfg.Garage.Name = "Mitra Garage"
	mocksSet.cfg.Garage.AdminWhatsApp = "6281234567890"

	svc := service.New(mocksSet.repo, mocksSet.vhRepo, mocksSet.cfg, mocksSet.cache, mocks.NewOtel(), mocksSet.kafka, pricing.Get())

	return svc, mocksSet
}

func doneBooking() model.Booking {
	return model.Booking{
		ID:            "7b0c3c54-1111-4222-8333-944445555666",
		CustomerName:  "Budi Santoso",
		VehicleNumber: "B 1234 CD",
		VehicleType:   "Mobil",
		ServiceType:   "Ganti Ban",
		BookingDate:   timezone.Now(),
		BookingTime:   "09:00",
		Status:        model.StatusDone,
		Phone:         "6281111111111",
		Email:         "budi@example.com",
		EstimatedCost: 800000,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m bookingMockSet)
		wantErr   bool
		wantCost  float64
	}{
		{
			name: "successful creation with explicit cost",
			req: dto.CreateBookingRequest{
				CustomerName:  "Budi Santoso",
				VehicleNumber: "B 1234 CD",
				ServiceType:   "Ganti Oli",
				BookingDate:   "2026-09-01",
				BookingTime:   "09:00",
				EstimatedCost: 175000,
			},
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantCost: 175000,
		},
		{
			name: "missing cost defaults from price table",
			req: dto.CreateBookingRequest{
				CustomerName:  "Budi Santoso",
				VehicleNumber: "B 1234 CD",
				ServiceType:   "Ganti Ban",
				BookingDate:   "2026-09-01",
				BookingTime:   "09:00",
			},
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantCost: 800000,
		},
		{
			name: "unknown service type falls back to default price",
			req: dto.CreateBookingRequest{
				CustomerName:  "Budi Santoso",
				VehicleNumber: "B 1234 CD",
				ServiceType:   "Layanan Misterius",
				BookingDate:   "2026-09-01",
				BookingTime:   "09:00",
			},
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantCost: 150000,
		},
		{
			name: "invalid booking date",
			req: dto.CreateBookingRequest{
				CustomerName:  "Budi Santoso",
				VehicleNumber: "B 1234 CD",
				ServiceType:   "Ganti Oli",
				BookingDate:   "01-09-2026",
				BookingTime:   "09:00",
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "unknown status rejected",
			req: dto.CreateBookingRequest{
				CustomerName:  "Budi Santoso",
				VehicleNumber: "B 1234 CD",
				ServiceType:   "Ganti Oli",
				BookingDate:   "2026-09-01",
				BookingTime:   "09:00",
				Status:        "teleported",
			},
			setupMock: func(m bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				CustomerName:  "Budi Santoso",
				VehicleNumber: "B 1234 CD",
				ServiceType:   "Ganti Oli",
				BookingDate:   "2026-09-01",
				BookingTime:   "09:00",
			},
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBookingService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCost, res.EstimatedCost)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestBookingService_GetMine(t *testing.T) {
	t.Run("name and email build an OR filter", func(t *testing.T) {
		svc, m := newBookingService(t)

		var captured gDto.FilterGroup

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				captured = filter

				return []model.Booking{doneBooking()}, nil
			})

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetMine(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, "Budi", "budi@example.com")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, gDto.FilterGroupOperatorOr, captured.Operator)
		assert.Len(t, captured.Filters, 2)
		assert.Equal(t, gDto.FilterOperatorLike, captured.Filters[0].(gDto.Filter).Operator)
		assert.Equal(t, model.FieldCustomerName, captured.Filters[0].(gDto.Filter).Field)
		assert.Equal(t, gDto.FilterOperatorEq, captured.Filters[1].(gDto.Filter).Operator)
		assert.Equal(t, model.FieldEmail, captured.Filters[1].(gDto.Filter).Field)
	})

	t.Run("missing identity is a bad request", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.GetMine(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, "", "")

		assert.Error(t, err)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Run("legal transition updates the booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := doneBooking()
		booking.Status = model.StatusConfirmed

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.UpdateStatus(context.Background(), dto.UpdateBookingStatusRequest{Status: "in_progress"}, booking.ID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "in_progress", res.Status)
		assert.False(t, res.Payable)
	})

	t.Run("finishing a booking appends vehicle history and publishes", func(t *testing.T) {
		svc, m := newBookingService(t)
		m.cfg.Kafka.Enable = true
		m.cfg.Kafka.Topics.BookingEvents = "garage.booking.events"

		booking := doneBooking()
		booking.Status = model.StatusInProgress

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.vhRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		m.kafka.EXPECT().
			SendMessages(gomock.Any(), "garage.booking.events", gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.UpdateStatus(context.Background(), dto.UpdateBookingStatusRequest{Status: "selesai"}, booking.ID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "done", res.Status)
		assert.True(t, res.Payable)
	})

	t.Run("illegal transition is rejected", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := doneBooking()

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		_, err := svc.UpdateStatus(context.Background(), dto.UpdateBookingStatusRequest{Status: "pending"}, booking.ID)

		assert.Error(t, err)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.UpdateStatus(context.Background(), dto.UpdateBookingStatusRequest{Status: "teleported"}, "some-id")

		assert.Error(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.UpdateStatus(context.Background(), dto.UpdateBookingStatusRequest{Status: "confirmed"}, "nonexistent-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Invoice(t *testing.T) {
	t.Run("computes tax and total for a finished booking", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := doneBooking()

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		res, err := svc.Invoice(context.Background(), booking.ID)

		assert.NoError(t, err)
		assert.Equal(t, float64(800000), res.Invoice.Subtotal)
		assert.InDelta(t, 88000, res.Invoice.Tax, 0.0001)
		assert.InDelta(t, 888000, res.Invoice.Total, 0.0001)
		assert.True(t, res.Invoice.Payable)
		assert.Contains(t, res.WhatsAppURL, "https://wa.me/6281234567890?text=")
		assert.Contains(t, res.Document, "Ganti Ban")
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Invoice(context.Background(), "nonexistent-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("cache miss falls back to the database", func(t *testing.T) {
		svc, m := newBookingService(t)

		booking := doneBooking()

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), booking.ID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, booking.ID, res.ID)
		assert.Equal(t, "Selesai", res.StatusLabel)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "nonexistent-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "test-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "nonexistent-id")

		assert.Error(t, err)
	})
}
