package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"kmc/infras/otel"
	"kmc/infras/postgres"
	"kmc/internal/domains/missionary/model"
	"kmc/shared/constant"
	gDto "kmc/shared/dto"
	"kmc/shared/logger"
	gRepo "kmc/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryInsertMissionary = "INSERT INTO ncm_m10001 (missionary_id, korean_name, english_name, mission_name, gender, " +
	"marital_status, resident_number1, resident_number2, birth_date, passport_number, admission_date, dispatch_date, " +
	"end_date, training_institution, training_batch, training_start_date, training_end_date, address) " +
	"VALUES (:missionary_id, :korean_name, :english_name, :mission_name, :gender, :marital_status, :resident_number1, " +
	":resident_number2, :birth_date, :passport_number, :admission_date, :dispatch_date, :end_date, :training_institution, " +
	":training_batch, :training_start_date, :training_end_date, :address) RETURNING id"

type Missionary interface {
	// Register writes the basic, spouse, contact and consent rows in one transaction and returns the serial id.
	Register(ctx context.Context, registration model.Registration) (int, error)
	// List returns one page and the number of matches across all pages.
	List(ctx context.Context, params gDto.QueryParams, keyword string) ([]model.Summary, int, error)
	// Get returns a zero Detail when no missionary has the id.
	Get(ctx context.Context, id int) (model.Detail, error)
	InsertFile(ctx context.Context, file model.FileUpload) error
}

type repositoryImpl struct {
	missionaries gRepo.Repository[model.Missionary]
	summaries    gRepo.Repository[model.Summary]
	spouses      gRepo.Repository[model.Spouse]
	contacts     gRepo.Repository[model.Contact]
	consents     gRepo.Repository[model.Consent]
	files        gRepo.Repository[model.FileUpload]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Missionary {
	return &repositoryImpl{
		missionaries: gRepo.NewRepository[model.Missionary](model.EntityMissionary, model.TableMissionary, model.FieldID, db, otel),
		summaries:    gRepo.NewRepository[model.Summary](model.EntityMissionary, model.TableMissionary, model.FieldID, db, otel),
		spouses:      gRepo.NewRepository[model.Spouse](model.EntitySpouse, model.TableSpouse, model.FieldMissionaryID, db, otel),
		contacts:     gRepo.NewRepository[model.Contact](model.EntityContact, model.TableContact, model.FieldMissionaryID, db, otel),
		consents:     gRepo.NewRepository[model.Consent](model.EntityConsent, model.TableConsent, model.FieldMissionaryID, db, otel),
		files:        gRepo.NewRepository[model.FileUpload](model.EntityFile, model.TableFile, model.FieldMissionaryID, db, otel),
		otel:         otel,
	}
}

func (r *repositoryImpl) Register(ctx context.Context, registration model.Registration) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".missionary.Register")
	defer scope.End()

	var id int

	err := r.missionaries.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := tx.BindNamed(queryInsertMissionary, registration.Missionary)
		if err != nil {
			return fmt.Errorf("failed to bind missionary: %w", err)
		}

		if err = tx.GetContext(ctx, &id, query, args...); err != nil {
			return fmt.Errorf("failed to insert missionary: %w", err)
		}

		if registration.Spouse.Present() {
			spouse := registration.Spouse
			spouse.MissionaryID = id

			if err = r.spouses.InsertTx(ctx, tx, spouse); err != nil {
				return err //nolint:wrapcheck
			}
		}

		contact := registration.Contact
		contact.MissionaryID = id

		if err = r.contacts.InsertTx(ctx, tx, contact); err != nil {
			return err //nolint:wrapcheck
		}

		consent := registration.Consent
		consent.MissionaryID = id

		return r.consents.InsertTx(ctx, tx, consent) //nolint:wrapcheck
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, err //nolint:wrapcheck
	}

	return id, nil
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, keyword string) ([]model.Summary, int, error) {
	filter := model.NameContains(keyword)

	summaries, err := r.summaries.GetAll(ctx, params, filter)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}

	total, err := r.summaries.Count(ctx, filter)
	if err != nil {
		return nil, 0, err //nolint:wrapcheck
	}

	return summaries, total, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (detail model.Detail, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".missionary.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	detail.Missionary, err = r.missionaries.Get(ctx, model.ByID(id))
	if err != nil || detail.Missionary.ID == 0 {
		return detail, err //nolint:wrapcheck
	}

	if detail.Spouse, err = r.spouses.Get(ctx, model.OwnedBy(model.TableSpouse, id)); err != nil {
		return detail, err //nolint:wrapcheck
	}

	if detail.Contact, err = r.contacts.Get(ctx, model.OwnedBy(model.TableContact, id)); err != nil {
		return detail, err //nolint:wrapcheck
	}

	if detail.Consent, err = r.consents.Get(ctx, model.OwnedBy(model.TableConsent, id)); err != nil {
		return detail, err //nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldFileType}

	detail.Files, err = r.files.GetAll(ctx, params, model.OwnedBy(model.TableFile, id))

	return detail, err //nolint:wrapcheck
}

func (r *repositoryImpl) InsertFile(ctx context.Context, file model.FileUpload) error {
	return r.files.Insert(ctx, file) //nolint:wrapcheck
}
