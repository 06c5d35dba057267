package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"kmc/infras/otel"
	"kmc/infras/postgres"
	"kmc/internal/domains/vacation/model"
	"kmc/shared/constant"
	gDto "kmc/shared/dto"
	"kmc/shared/logger"
	gRepo "kmc/shared/repository"
	"kmc/shared/status"

	"github.com/jmoiron/sqlx"
)

const queryInsertRequest = "INSERT INTO kmc_requests (req_email, req_date, req_cd, req_desc, res_cd) " +
	"VALUES (:req_email, :req_date, :req_cd, :req_desc, :res_cd) RETURNING req_no"

type Vacation interface {
	// BookedDays returns the days among days already taken by email, excluding exceptReqNo.
	BookedDays(ctx context.Context, email string, days []string, exceptReqNo int) ([]string, error)
	// Create stores the request, its day rows and its PTO row in one transaction and returns req_no.
	Create(ctx context.Context, request model.Request, plan model.Plan) (int, error)
	// Resubmit resets the response and replaces the period of an existing request.
	Resubmit(ctx context.Context, request model.Request, plan model.Plan) error
	Get(ctx context.Context, reqNo int) (model.Request, error)
	List(ctx context.Context, requester string) ([]model.RequestView, error)
	Respond(ctx context.Context, reqNo int, response map[string]any) error
}

type repositoryImpl struct {
	requests gRepo.Repository[model.Request]
	days     gRepo.Repository[model.Day]
	ptos     gRepo.Repository[model.PTO]
	views    gRepo.Repository[model.RequestView]
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Vacation {
	return &repositoryImpl{
		requests: gRepo.NewRepository[model.Request](model.EntityRequest, model.TableRequest, model.FieldReqNo, db, otel),
		days:     gRepo.NewRepository[model.Day](model.EntityDay, model.TableDay, model.FieldReqNo, db, otel),
		ptos:     gRepo.NewRepository[model.PTO](model.EntityPTO, model.TablePTO, model.FieldReqNo, db, otel),
		views:    gRepo.NewRepository[model.RequestView](model.EntityRequest, model.TableRequest, model.FieldReqNo, db, otel),
		otel:     otel,
	}
}

func (r *repositoryImpl) BookedDays(ctx context.Context, email string, days []string, exceptReqNo int) ([]string, error) {
	params := gDto.QueryParams{SortBy: model.FieldStartDate}

	rows, err := r.days.GetAll(ctx, params, model.BookedOn(email, days, exceptReqNo), model.FieldStartDate)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	booked := make([]string, 0, len(rows))
	for _, row := range rows {
		booked = append(booked, row.StartDate)
	}

	return booked, nil
}

func (r *repositoryImpl) Create(ctx context.Context, request model.Request, plan model.Plan) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vacation.Create")
	defer scope.End()

	var reqNo int

	err := r.requests.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := tx.BindNamed(queryInsertRequest, request)
		if err != nil {
			return fmt.Errorf("failed to bind vacation request: %w", err)
		}

		if err = tx.GetContext(ctx, &reqNo, query, args...); err != nil {
			return fmt.Errorf("failed to insert vacation request: %w", err)
		}

		if err = r.days.InsertBulkTx(ctx, tx, plan.DayRows(request.ReqEmail, reqNo)); err != nil {
			return err //nolint:wrapcheck
		}

		return r.ptos.InsertTx(ctx, tx, plan.PTORow(request.ReqEmail, reqNo)) //nolint:wrapcheck
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, err //nolint:wrapcheck
	}

	return reqNo, nil
}

func (r *repositoryImpl) Resubmit(ctx context.Context, request model.Request, plan model.Plan) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vacation.Resubmit")
	defer scope.End()

	reset := map[string]any{
		model.FieldReqDesc:  request.ReqDesc,
		model.FieldResCd:    string(status.RequestWaiting),
		model.FieldResEmail: nil,
		model.FieldResDate:  nil,
		model.FieldResDesc:  nil,
	}

	period := map[string]any{
		model.FieldStartYmd: plan.Start,
		model.FieldEndYmd:   plan.End,
		model.FieldPtoCd:    string(plan.PTO),
	}

	err := r.requests.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.requests.UpdateTx(ctx, tx, reset, model.ByReqNo(model.TableRequest, request.ReqNo)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := r.days.DeleteTx(ctx, tx, model.ByReqNo(model.TableDay, request.ReqNo)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := r.days.InsertBulkTx(ctx, tx, plan.DayRows(request.ReqEmail, request.ReqNo)); err != nil {
			return err //nolint:wrapcheck
		}

		return r.ptos.UpdateTx(ctx, tx, period, model.ByReqNo(model.TablePTO, request.ReqNo)) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, reqNo int) (model.Request, error) {
	return r.requests.Get(ctx, model.ByReqNo(model.TableRequest, reqNo)) //nolint:wrapcheck
}

func (r *repositoryImpl) List(ctx context.Context, requester string) ([]model.RequestView, error) {
	params := gDto.QueryParams{SortBy: model.TableRequest + "." + model.FieldReqDate, SortDir: gDto.SortDirDesc}

	return r.views.GetAll(ctx, params, model.Vacations(requester)) //nolint:wrapcheck
}

func (r *repositoryImpl) Respond(ctx context.Context, reqNo int, response map[string]any) error {
	return r.requests.Update(ctx, response, model.ByReqNo(model.TableRequest, reqNo)) //nolint:wrapcheck
}
