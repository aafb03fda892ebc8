package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"garage/config"
	"garage/infras/otel/mocks"
	vhMocks "garage/internal/domains/vehiclehistory/mocks"
	"garage/internal/domains/vehiclehistory/model"
	"garage/internal/domains/vehiclehistory/model/dto"
	"garage/internal/domains/vehiclehistory/service"
	"garage/shared/cache"
	cacheMocks "garage/shared/cache/mocks"
	gModel "garage/shared/model"
	"garage/shared/timezone"
)

type vhMockSet struct {
	repo  *vhMocks.MockVehicleHistory
	cache *cacheMocks.MockRedisCache
	cfg   *config.Config
}

func newVehicleHistoryService(t *testing.T) (service.VehicleHistory, vhMockSet) {
	ctrl := gomock.NewController(t)

	mocksSet := vhMockSet{
		repo:  vhMocks.NewMockVehicleHistory(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		cfg:   &config.Config{},
	}
	mocksSet.cfg.Cache.TTL = 3600

	svc := service.New(mocksSet.repo, mocksSet.cfg, mocksSet.cache, mocks.NewOtel())

	return svc, mocksSet
}

func sampleHistory() model.VehicleHistory {
	serviceDate, _ := timezone.Parse("2006-01-02", "2025-07-23")

	return model.VehicleHistory{
		ID:            "3f9d6a10-1111-4222-8333-944445555666",
		VehicleNumber: "B5432KCR",
		CustomerName:  "Customer Test",
		ServiceType:   "Ganti Ban",
		ServiceDate:   serviceDate,
		Cost:          800000,
		Notes:         "Ganti ban depan dan belakang.",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestVehicleHistoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateVehicleHistoryRequest
		setupMock func(m vhMockSet)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateVehicleHistoryRequest{
				VehicleNumber: "B5432KCR",
				CustomerName:  "Customer Test",
				ServiceType:   "Ganti Ban",
				ServiceDate:   "2025-07-23",
				Cost:          800000,
			},
			setupMock: func(m vhMockSet) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, history model.VehicleHistory) error {
						assert.Equal(t, "B5432KCR", history.VehicleNumber)
						assert.Equal(t, "Ganti Ban", history.ServiceType)
						assert.NotEmpty(t, history.ID)

						return nil
					})
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid service date",
			req: dto.CreateVehicleHistoryRequest{
				VehicleNumber: "B5432KCR",
				CustomerName:  "Customer Test",
				ServiceType:   "Ganti Ban",
				ServiceDate:   "23-07-2025",
			},
			setupMock: func(m vhMockSet) {},
			wantErr:   true,
		},
		{
			name: "repository failure",
			req: dto.CreateVehicleHistoryRequest{
				VehicleNumber: "B5432KCR",
				CustomerName:  "Customer Test",
				ServiceType:   "Ganti Ban",
				ServiceDate:   "2025-07-23",
			},
			setupMock: func(m vhMockSet) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newVehicleHistoryService(t)
			tt.setupMock(m)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestVehicleHistoryService_Get(t *testing.T) {
	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		svc, m := newVehicleHistoryService(t)
		history := sampleHistory()

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(history, nil)
		m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Get(context.Background(), history.ID)
		require.NoError(t, err)

		assert.Equal(t, history.ID, res.ID)
		assert.Equal(t, "B5432KCR", res.VehicleNumber)
		assert.Equal(t, "2025-07-23", res.ServiceDate)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc, m := newVehicleHistoryService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VehicleHistory{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")
		assert.Error(t, err)
	})
}

func TestVehicleHistoryService_Update(t *testing.T) {
	t.Run("empty request is rejected", func(t *testing.T) {
		svc, _ := newVehicleHistoryService(t)

		err := svc.Update(context.Background(), dto.UpdateVehicleHistoryRequest{}, "some-id")
		assert.Error(t, err)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc, m := newVehicleHistoryService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateVehicleHistoryRequest{Notes: "updated"}, "missing-id")
		assert.Error(t, err)
	})

	t.Run("successful update invalidates caches", func(t *testing.T) {
		svc, m := newVehicleHistoryService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateVehicleHistoryRequest{Cost: 900000}, sampleHistory().ID)
		assert.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
	})
}

func TestVehicleHistoryService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, m := newVehicleHistoryService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), sampleHistory().ID)
		assert.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc, m := newVehicleHistoryService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")
		assert.Error(t, err)
	})
}
