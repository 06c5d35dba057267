package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"kmc/config"
	"kmc/infras/otel"
	"kmc/infras/postgres"
	"kmc/internal/domains/importer/model"
	"kmc/shared/constant"
	gDto "kmc/shared/dto"
	"kmc/shared/logger"
	gRepo "kmc/shared/repository"
	"slices"

	"github.com/jmoiron/sqlx"
)

const (
	queryUploadPermission = "SELECT kmc_upload_info($1)"
	queryImportLock       = "SELECT pg_try_advisory_xact_lock($1)"
	queryStagingKeys      = "SELECT DISTINCT seq_no FROM kms_info_tmp WHERE seq_no IS NOT NULL"
	queryMerge            = "SELECT proc_upload_info($1)"
)

var ErrImportInProgress = errors.New("import already in progress")

type Importer interface {
	// UploadFlag returns the permission flag for operator; "X" or empty means denied.
	UploadFlag(ctx context.Context, operator string) (string, error)
	// Replace swaps the staging table for rows and merges it into kmc_info, all in one transaction.
	Replace(ctx context.Context, operator string, rows []model.StagingRow) error
}

type repositoryImpl struct {
	gRepo.Repository[model.StagingRow]
	db      *postgres.Connection
	otel    otel.Otel
	lockKey int64
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Importer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.StagingRow](model.EntityName, model.TableName, model.FieldSeqNo, db, otel),
		db:         db,
		otel:       otel,
		lockKey:    cfg.Import.LockKey,
	}
}

func (r *repositoryImpl) UploadFlag(ctx context.Context, operator string) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".importer.UploadFlag")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUploadPermission)

	var flag sql.NullString
	if err := r.db.Read.GetContext(ctx, &flag, queryUploadPermission, operator); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to check upload permission: %w", err)
	}

	return flag.String, nil
}

func (r *repositoryImpl) Replace(ctx context.Context, operator string, rows []model.StagingRow) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".importer.Replace")
	defer scope.End()

	err := r.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var locked bool
		if err := tx.GetContext(ctx, &locked, queryImportLock, r.lockKey); err != nil {
			return fmt.Errorf("failed to take import lock: %w", err)
		}

		if !locked {
			return ErrImportInProgress
		}

		var keys []string
		if err := tx.SelectContext(ctx, &keys, queryStagingKeys); err != nil {
			return fmt.Errorf("failed to read staging keys: %w", err)
		}

		for chunk := range slices.Chunk(keys, gRepo.MaxBindParams) {
			filter := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{Field: model.FieldSeqNo, Value: chunk, Operator: gDto.FilterOperatorIn, Table: model.TableName},
				},
			}

			if err := r.DeleteTx(ctx, tx, filter); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if err := r.InsertBulkTx(ctx, tx, rows); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := tx.ExecContext(ctx, queryMerge, operator); err != nil {
			return fmt.Errorf("failed to merge staging rows: %w", err)
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
