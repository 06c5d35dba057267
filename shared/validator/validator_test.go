package validator_test

import (
	"kmc/shared/failure"
	"kmc/shared/validator"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mealRequest struct {
	RoomNo   string `json:"room_no"   validate:"required,roomno"`
	Date     string `json:"date"      validate:"required,ymd"`
	Time     string `json:"time"      validate:"omitempty,hhmm"`
	Approved string `json:"approved"  validate:"omitempty,yn"`
	Count    int    `json:"count"     validate:"gte=0,lte=4"`
}

type uploadRequest struct {
	File multipart.FileHeader `validate:"mimetypes=application/pdf image/png,maxfilesize=1"`
}

func validMeal() mealRequest {
	return mealRequest{RoomNo: "201", Date: "20251015", Time: "0730", Approved: "Y", Count: 2}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*mealRequest)
		message string
	}{
		{name: "valid request", mutate: func(*mealRequest) {}},
		{name: "missing room", mutate: func(r *mealRequest) { r.RoomNo = "" }, message: "RoomNo is required"},
		{name: "room with four digits", mutate: func(r *mealRequest) { r.RoomNo = "2011" }, message: "RoomNo must be a 3 digit room number"},
		{name: "room with letters", mutate: func(r *mealRequest) { r.RoomNo = "A01" }, message: "RoomNo must be a 3 digit room number"},
		{name: "impossible date", mutate: func(r *mealRequest) { r.Date = "20250231" }, message: "Date must be a valid date (YYYYMMDD)"},
		{name: "dashed date is accepted", mutate: func(r *mealRequest) { r.Date = "2025-10-15" }},
		{name: "bad time", mutate: func(r *mealRequest) { r.Time = "2500" }, message: "Time must be a valid time (HHMM)"},
		{name: "bad yn flag", mutate: func(r *mealRequest) { r.Approved = "X" }, message: "Approved must be Y or N"},
		{name: "count too high", mutate: func(r *mealRequest) { r.Count = 5 }, message: "Count must be less than or equal to 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validMeal()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid body", body: `{"room_no":"305","date":"20251015","count":1}`},
		{name: "invalid field", body: `{"room_no":"35","date":"20251015"}`, expectError: true},
		{name: "malformed body", body: `{"room_no":}`, expectError: true},
		{name: "empty body", body: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req mealRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.expectError {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("202", "roomno"))
	assert.Error(t, validator.ValidateVar("20", "roomno"))
	assert.NoError(t, validator.ValidateVar("N", "yn"))
	assert.NoError(t, validator.ValidateVar("", "empty"))
	assert.Error(t, validator.ValidateVar("x", "empty"))
	assert.NoError(t, validator.ValidateVar("desk@kmc.org", "email"))
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) multipart.FileHeader {
		h := textproto.MIMEHeader{}
		h.Set("Content-Type", contentType)

		return multipart.FileHeader{Filename: "passport.pdf", Header: h, Size: size}
	}

	tests := []struct {
		name        string
		file        multipart.FileHeader
		expectError bool
	}{
		{name: "allowed type within size", file: header("application/pdf", 512)},
		{name: "disallowed type", file: header("application/zip", 512), expectError: true},
		{name: "file too large", file: header("image/png", 2*1024*1024), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadRequest{File: tt.file})

			if tt.expectError {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
