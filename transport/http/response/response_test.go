package response_test

import (
	"encoding/json"
	"kmc/shared/constant"
	"kmc/shared/failure"
	"kmc/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithError(rec, failure.Conflict("이미 업로드가 진행 중입니다."))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "이미 업로드가 진행 중입니다.", body["error"])
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"room_no": "201"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"room_no":"201"}}`, rec.Body.String())
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()
	data := []byte("room,meal\n201,B\n")

	response.WithFile(rec, "식수_202510.csv", constant.ContentTypeCSV, data)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, data, rec.Body.Bytes())
	assert.Equal(t, "16", rec.Header().Get(constant.HeaderContentLength))
	assert.Equal(t, `attachment; filename*=utf-8''%EC%8B%9D%EC%88%98_202510.csv`, rec.Header().Get(constant.HeaderContentDisposition))
}
