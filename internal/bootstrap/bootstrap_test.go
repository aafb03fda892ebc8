package bootstrap_test

import (
	"context"
	"errors"
	"testing"

	"garage/config"
	otelMocks "garage/infras/otel/mocks"
	"garage/internal/bootstrap"
	userModel "garage/internal/domains/user/model"
	userMocks "garage/internal/domains/user/mocks"
	vhModel "garage/internal/domains/vehiclehistory/model"
	vhMocks "garage/internal/domains/vehiclehistory/mocks"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSeeder(t *testing.T) (*bootstrap.Seeder, *userMocks.MockUser, *vhMocks.MockVehicleHistory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := userMocks.NewMockUser(ctrl)
	histories := vhMocks.NewMockVehicleHistory(ctrl)

	seeder := bootstrap.NewSeeder(users, histories, &config.Config{}, otelMocks.NewOtel())

	return seeder, users, histories
}

func TestSeederRun(t *testing.T) {
	t.Run("fresh database seeds both accounts and the sample history", func(t *testing.T) {
		seeder, users, histories := newSeeder(t)

		var seeded []userModel.User

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				seeded = append(seeded, user)

				return nil
			}).Times(2)

		histories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		histories.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		err := seeder.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, seeded, 2)
		assert.Equal(t, "admin", seeded[0].Username)
		assert.Equal(t, constant.RoleAdmin, seeded[0].Role)
		assert.Equal(t, "customer_new", seeded[1].Username)
		assert.Equal(t, constant.RoleCustomer, seeded[1].Role)

		for _, user := range seeded {
			assert.Equal(t, constant.UserStatusActive, user.Status)
			assert.NotEmpty(t, user.ID)
		}

		assert.NoError(t, password.Verify("admin123", seeded[0].Password))
		assert.NoError(t, password.Verify("customer123", seeded[1].Password))
	})

	t.Run("second run inserts nothing", func(t *testing.T) {
		seeder, users, histories := newSeeder(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
		histories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		err := seeder.Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("existence checks match username or email", func(t *testing.T) {
		seeder, users, histories := newSeeder(t)

		var filters []gDto.FilterGroup

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				filters = append(filters, filter)

				return true, nil
			}).Times(2)
		histories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		err := seeder.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, filters, 2)
		assert.Equal(t, gDto.FilterGroupOperatorOr, filters[0].Operator)

		first, ok := filters[0].Filters[0].(gDto.Filter)
		require.True(t, ok)
		assert.Equal(t, userModel.FieldUsername, first.Field)
		assert.Equal(t, "admin", first.Value)

		second, ok := filters[0].Filters[1].(gDto.Filter)
		require.True(t, ok)
		assert.Equal(t, userModel.FieldEmail, second.Field)
		assert.Equal(t, "admin@mitragarage.com", second.Value)
	})

	t.Run("history rows carry the sample services", func(t *testing.T) {
		seeder, users, histories := newSeeder(t)

		var rows []vhModel.VehicleHistory

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
		histories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		histories.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, history vhModel.VehicleHistory) error {
				rows = append(rows, history)

				return nil
			}).Times(2)

		err := seeder.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, rows, 2)
		assert.Equal(t, "B5432KCR", rows[0].VehicleNumber)
		assert.Equal(t, "Ganti Ban", rows[0].ServiceType)
		assert.InDelta(t, 800000, rows[0].Cost, 0.001)
		assert.Equal(t, "Service AC", rows[1].ServiceType)
		assert.InDelta(t, 250000, rows[1].Cost, 0.001)
	})

	t.Run("per-row insert failure is skipped and does not abort the run", func(t *testing.T) {
		seeder, users, histories := newSeeder(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

		calls := 0
		users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ userModel.User) error {
				calls++
				if calls == 1 {
					return errors.New("duplicate key value violates unique constraint")
				}

				return nil
			}).Times(2)

		histories.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		err := seeder.Run(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("connectivity failure aborts the run", func(t *testing.T) {
		seeder, users, _ := newSeeder(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))

		err := seeder.Run(context.Background())
		assert.Error(t, err)
	})
}
