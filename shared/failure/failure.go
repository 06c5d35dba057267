package failure

import (
	"errors"
	"kmc/shared/constant"
	"net/http"

	"github.com/lib/pq"
)

// Failure is an error that already knows the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError       = New(http.StatusForbidden, "You don't have the required permissions")
	NotAdminError        = New(http.StatusForbidden, "관리자 권한이 없습니다. 관리자에게 문의하세요.")
	UploadForbiddenError = New(http.StatusForbidden, "업로드 권한이 없습니다.")
)

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// fromErr keeps nil as nil so callers can wrap unconditionally.
func fromErr(code int, err error) error {
	if err == nil {
		return nil
	}

	return New(code, err.Error())
}

func BadRequest(err error) error {
	return fromErr(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// NotFound takes the full message, e.g. "room not found".
func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func InternalError(err error) error {
	return fromErr(http.StatusInternalServerError, err)
}

// FromDB maps a database error onto a Failure by its SQLSTATE code.
// Unique violations become conflicts carrying conflictMessage; anything unmapped is returned unchanged.
func FromDB(err error, conflictMessage string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return Conflict(conflictMessage)
	case constant.PqErrorCodeFkViolation:
		return BadRequestFromString(pqErr.Message)
	case constant.PqErrorCodeLockNotAvailable:
		return Conflict(pqErr.Message)
	default:
		return err
	}
}

// GetCode falls back to 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
