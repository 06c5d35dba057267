package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmc/infras/otel/mocks"
	"kmc/infras/postgres"
	"kmc/internal/domains/missionary/model"
	"kmc/internal/domains/missionary/repository"
	gDto "kmc/shared/dto"
)

func newRepository(t *testing.T) (repository.Missionary, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func registration(marital string) model.Registration {
	r := model.Registration{
		Missionary: model.Missionary{MissionaryID: "M-0001", KoreanName: "김선교", MaritalStatus: marital},
		Contact:    model.Contact{MobilePhone: "010-0000-0000", RegularMail: pq.StringArray{"기도편지", "소식지"}},
		Consent:    model.Consent{ConsentGiven: true, ConsentDate: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)},
	}

	if marital != model.MaritalSingle {
		r.Spouse = model.Spouse{KoreanName: "이선교"}
	}

	return r
}

func TestRegister(t *testing.T) {
	t.Run("married writes the spouse row", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ncm_m10001")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectExec("INSERT INTO ncm_m10101").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO ncm_m10002").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO ncm_m10003").
			WithArgs(11, true, sqlmock.AnyArg(), "", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		id, err := repo.Register(context.Background(), registration("기혼"))

		require.NoError(t, err)
		assert.Equal(t, 11, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single skips the spouse row", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ncm_m10001")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectExec("INSERT INTO ncm_m10002").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO ncm_m10003").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		id, err := repo.Register(context.Background(), registration(model.MaritalSingle))

		require.NoError(t, err)
		assert.Equal(t, 12, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("contact failure rolls back", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ncm_m10001")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(13))
		mock.ExpectExec("INSERT INTO ncm_m10002").
			WillReturnError(errors.New("value too long"))
		mock.ExpectRollback()

		_, err := repo.Register(context.Background(), registration(model.MaritalSingle))

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGet(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM ncm_m10001")).
			ExpectQuery().
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		detail, err := repo.Get(context.Background(), 99)

		require.NoError(t, err)
		assert.Zero(t, detail.Missionary.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("collects every section", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM ncm_m10001")).
			ExpectQuery().
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows([]string{"id", "missionary_id", "korean_name", "marital_status"}).
				AddRow(11, "M-0001", "김선교", "기혼"))
		mock.ExpectPrepare(regexp.QuoteMeta("FROM ncm_m10101")).
			ExpectQuery().
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows([]string{"missionary_id", "korean_name"}).AddRow(11, "이선교"))
		mock.ExpectPrepare(regexp.QuoteMeta("FROM ncm_m10002")).
			ExpectQuery().
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows([]string{"missionary_id", "mobile_phone", "regular_mail"}).
				AddRow(11, "010-0000-0000", "{기도편지,소식지}"))
		mock.ExpectPrepare(regexp.QuoteMeta("FROM ncm_m10003")).
			ExpectQuery().
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows([]string{"missionary_id", "consent_given"}).AddRow(11, true))
		mock.ExpectPrepare(regexp.QuoteMeta("FROM ncm_file_uploads")).
			ExpectQuery().
			WithArgs(11).
			WillReturnRows(sqlmock.NewRows([]string{"missionary_id", "file_type", "original_filename"}).
				AddRow(11, "passport", "scan.pdf"))

		detail, err := repo.Get(context.Background(), 11)

		require.NoError(t, err)
		assert.Equal(t, "M-0001", detail.Missionary.MissionaryID)
		assert.Equal(t, "이선교", detail.Spouse.KoreanName)
		assert.Equal(t, pq.StringArray{"기도편지", "소식지"}, detail.Contact.RegularMail)
		assert.True(t, detail.Consent.ConsentGiven)
		require.Len(t, detail.Files, 1)
		assert.Equal(t, "scan.pdf", detail.Files[0].OriginalFilename)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestList(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare("LEFT JOIN ncm_m10002 contact").
		ExpectQuery().
		WithArgs("%김%", 1, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "missionary_id", "korean_name", "mobile_phone", "email1"}).
			AddRow(11, "M-0001", "김선교", "010-0000-0000", nil))
	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(DISTINCT ncm_m10001.id) FROM ncm_m10001")).
		ExpectQuery().
		WithArgs("%김%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(31))

	params := gDto.QueryParams{Page: 1, Limit: 1, SortBy: "ncm_m10001.korean_name", SortDir: gDto.SortDirAsc}

	summaries, total, err := repo.List(context.Background(), params, "김")

	require.NoError(t, err)
	assert.Equal(t, 31, total)
	require.Len(t, summaries, 1)
	assert.Equal(t, "김선교", summaries[0].KoreanName)
	assert.Nil(t, summaries[0].Email1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFile(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec("INSERT INTO ncm_file_uploads").
		WithArgs(11, "passport", "scan.pdf", "1760500000123_scan.pdf", "missionaries/11/passport/1760500000123_scan.pdf", int64(2048), "application/pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertFile(context.Background(), model.FileUpload{
		MissionaryID:     11,
		FileType:         "passport",
		OriginalFilename: "scan.pdf",
		StoredFilename:   "1760500000123_scan.pdf",
		FilePath:         "missionaries/11/passport/1760500000123_scan.pdf",
		FileSize:         2048,
		MimeType:         "application/pdf",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
