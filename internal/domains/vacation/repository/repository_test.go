package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmc/infras/otel/mocks"
	"kmc/infras/postgres"
	"kmc/internal/domains/vacation/model"
	"kmc/internal/domains/vacation/repository"
)

const staff = "staff@kmc.org"

func newRepository(t *testing.T) (repository.Vacation, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func twoDays(t *testing.T) model.Plan {
	plan, err := model.NewPlan("2025-10-14", "2025-10-15", false, false)
	require.NoError(t, err)

	return plan
}

func TestCreate(t *testing.T) {
	repo, mock := newRepository(t)

	request := model.Request{ReqEmail: staff, ReqDate: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC), ReqCd: "VC", ReqDesc: "가족 행사", ResCd: "W"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO kmc_requests")).
		WithArgs(staff, sqlmock.AnyArg(), "VC", "가족 행사", "W").
		WillReturnRows(sqlmock.NewRows([]string{"req_no"}).AddRow(42))
	mock.ExpectExec("INSERT INTO kmc_guentae_mgmt").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO kmc_pto_mgmt").
		WithArgs(staff, 42, "20251014", "20251015", "AL").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reqNo, err := repo.Create(context.Background(), request, twoDays(t))

	require.NoError(t, err)
	assert.Equal(t, 42, reqNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackOnDayFailure(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO kmc_requests")).
		WillReturnRows(sqlmock.NewRows([]string{"req_no"}).AddRow(43))
	mock.ExpectExec("INSERT INTO kmc_guentae_mgmt").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), model.Request{ReqEmail: staff, ReqCd: "VC", ResCd: "W"}, twoDays(t))

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResubmit(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE kmc_requests SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM kmc_guentae_mgmt").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO kmc_guentae_mgmt").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE kmc_pto_mgmt SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Resubmit(context.Background(), model.Request{ReqNo: 7, ReqEmail: staff, ReqDesc: "날짜 변경"}, twoDays(t))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResubmitRollsBackOnPTOFailure(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE kmc_requests SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM kmc_guentae_mgmt").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO kmc_guentae_mgmt").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE kmc_pto_mgmt SET").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Resubmit(context.Background(), model.Request{ReqNo: 7, ReqEmail: staff}, twoDays(t))

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedDays(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT kmc_guentae_mgmt.start_date FROM kmc_guentae_mgmt")).
		ExpectQuery().
		WithArgs(staff, "VC", "20251014", "20251015", 7).
		WillReturnRows(sqlmock.NewRows([]string{"start_date"}).AddRow("20251015"))

	booked, err := repo.BookedDays(context.Background(), staff, []string{"20251014", "20251015"}, 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"20251015"}, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newRepository(t)

	name := "김직원"

	mock.ExpectPrepare("LEFT JOIN kmc_adms requester").
		ExpectQuery().
		WithArgs("VC").
		WillReturnRows(sqlmock.NewRows([]string{"req_no", "req_email", "req_date", "req_desc", "res_email", "res_date", "res_cd", "res_desc", "req_name", "res_name", "start_ymd", "end_ymd", "pto_cd"}).
			AddRow(1, staff, time.Now(), "휴가", nil, nil, "W", nil, name, nil, "20251014", "20251015", "AL"))

	views, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, &name, views[0].ReqName)
	assert.Nil(t, views[0].ResName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
