package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"kmc/infras/otel"
	"kmc/infras/postgres"
	"kmc/internal/domains/meal/model"
	gDto "kmc/shared/dto"
	gRepo "kmc/shared/repository"
)

type Meal interface {
	Insert(ctx context.Context, mealLog model.MealLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MealLog, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.MealLog]
}

func New(db *postgres.Connection, otel otel.Otel) Meal {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MealLog](model.EntityName, model.TableName, model.FieldRoomNo, db, otel),
	}
}
