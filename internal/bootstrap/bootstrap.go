package bootstrap

import (
	"context"
	"fmt"
	"time"

	"garage/config"
	"garage/infras/otel"
	userModel "garage/internal/domains/user/model"
	userRepo "garage/internal/domains/user/repository"
	vhModel "garage/internal/domains/vehiclehistory/model"
	vhRepo "garage/internal/domains/vehiclehistory/repository"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	gModel "garage/shared/model"
	"garage/shared/password"
	"garage/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seedUser = "bootstrap"

type seedAccount struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

type seedHistory struct {
	VehicleNumber string
	CustomerName  string
	ServiceType   string
	ServiceDate   string
	Cost          float64
	Notes         string
}

// defaultAccounts are created only when neither the username nor the email is
// already taken. Existing rows are never altered.
var defaultAccounts = []seedAccount{
	{
		Username: "admin",
		Email:    "admin@mitragarage.com",
		Password: "admin123",
		FullName: "Administrator",
		Role:     constant.RoleAdmin,
	},
	{
		Username: "customer_new",
		Email:    "customer@example.com",
		Password: "customer123",
		FullName: "Customer User",
		Role:     constant.RoleCustomer,
	},
}

var sampleHistories = []seedHistory{
	{
		VehicleNumber: "B5432KCR",
		CustomerName:  "Customer Test",
		ServiceType:   "Ganti Ban",
		ServiceDate:   "2025-07-23",
		Cost:          800000,
		Notes:         "Ganti ban depan dan belakang. Menggunakan ban Michelin.",
	},
	{
		VehicleNumber: "B5432KCR",
		CustomerName:  "Customer Test",
		ServiceType:   "Service AC",
		ServiceDate:   "2025-07-20",
		Cost:          250000,
		Notes:         "Service AC lengkap. Cuci evaporator dan isi freon.",
	},
}

type Seeder struct {
	users     userRepo.User
	histories vhRepo.VehicleHistory
	cfg       *config.Config
	otel      otel.Otel
}

func NewSeeder(users userRepo.User, histories vhRepo.VehicleHistory, cfg *config.Config, otel otel.Otel) *Seeder {
	return &Seeder{
		users:     users,
		histories: histories,
		cfg:       cfg,
		otel:      otel,
	}
}

// Run seeds the default accounts and the sample vehicle history. Re-running
// is safe: rows are inserted only when their natural key is absent. Per-row
// failures are logged and skipped; only connectivity errors propagate.
func (s *Seeder) Run(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seeder.Run")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.seedUsers(ctx); err != nil {
		return err
	}

	return s.seedVehicleHistories(ctx)
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	for _, account := range defaultAccounts {
		exists, err := s.users.Exist(ctx, identityFilter(account.Username, account.Email))
		if err != nil {
			return fmt.Errorf("checking seed user %s: %w", account.Username, err)
		}

		if exists {
			log.Info().Str("username", account.Username).Msg("Seed user already exists, skipping")

			continue
		}

		hashed, err := password.Hash(account.Password)
		if err != nil {
			log.Error().Err(err).Str("username", account.Username).Msg("Failed to hash seed user password, skipping")

			continue
		}

		user := userModel.User{
			ID:       uuid.NewString(),
			Username: account.Username,
			Email:    account.Email,
			Password: hashed,
			FullName: account.FullName,
			Role:     account.Role,
			Status:   constant.UserStatusActive,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  seedUser,
				ModifiedBy: seedUser,
			},
		}

		if err := s.users.Insert(ctx, user); err != nil {
			log.Error().Err(err).Str("username", account.Username).Msg("Failed to insert seed user, skipping")

			continue
		}

		log.Info().Str("username", account.Username).Str("role", account.Role).Msg("Created seed user")
	}

	return nil
}

func (s *Seeder) seedVehicleHistories(ctx context.Context) error {
	for _, record := range sampleHistories {
		serviceDate, err := timezone.Parse(constant.DateOnlyFormat, record.ServiceDate)
		if err != nil {
			log.Error().Err(err).Str("vehicle_number", record.VehicleNumber).Msg("Invalid seed history date, skipping")

			continue
		}

		exists, err := s.histories.Exist(ctx, historyFilter(record, serviceDate))
		if err != nil {
			return fmt.Errorf("checking seed history %s %s: %w", record.VehicleNumber, record.ServiceType, err)
		}

		if exists {
			log.Info().Str("vehicle_number", record.VehicleNumber).Str("service_type", record.ServiceType).Msg("Seed history already exists, skipping")

			continue
		}

		history := vhModel.VehicleHistory{
			ID:            uuid.NewString(),
			VehicleNumber: record.VehicleNumber,
			CustomerName:  record.CustomerName,
			ServiceType:   record.ServiceType,
			ServiceDate:   serviceDate,
			Cost:          record.Cost,
			Notes:         record.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  seedUser,
				ModifiedBy: seedUser,
			},
		}

		if err := s.histories.Insert(ctx, history); err != nil {
			log.Error().Err(err).Str("vehicle_number", record.VehicleNumber).Msg("Failed to insert seed history, skipping")

			continue
		}

		log.Info().Str("vehicle_number", record.VehicleNumber).Str("service_type", record.ServiceType).Msg("Created seed history")
	}

	return nil
}

func identityFilter(username, email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    username,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				ArgName:  "identity_email",
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func historyFilter(record seedHistory, serviceDate time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    vhModel.FieldVehicleNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    record.VehicleNumber,
				Table:    vhModel.TableName,
			},
			gDto.Filter{
				Field:    vhModel.FieldServiceDate,
				Operator: gDto.FilterOperatorEq,
				Value:    serviceDate,
				Table:    vhModel.TableName,
			},
			gDto.Filter{
				Field:    vhModel.FieldServiceType,
				Operator: gDto.FilterOperatorEq,
				Value:    record.ServiceType,
				Table:    vhModel.TableName,
			},
		},
	}
}
