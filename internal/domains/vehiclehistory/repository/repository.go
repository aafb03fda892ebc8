package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"garage/infras/otel"
	"garage/infras/postgres"
	"garage/internal/domains/vehiclehistory/model"
	gDto "garage/shared/dto"
	gRepo "garage/shared/repository"
)

type VehicleHistory interface {
	Insert(ctx context.Context, model model.VehicleHistory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VehicleHistory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VehicleHistory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.VehicleHistory]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) VehicleHistory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VehicleHistory](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
