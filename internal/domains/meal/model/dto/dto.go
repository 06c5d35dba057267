package dto

import (
	"fmt"
	"kmc/internal/domains/meal/model"
	"kmc/shared/datefmt"
	"kmc/shared/status"
)

const (
	LookupModeGuest  = "guest"
	LookupModeManual = "manual"

	WarningEatNumClamped = "최대 인원은 4명으로 제한됩니다."
)

type LookupRequest struct {
	RoomNo string `json:"room_no" validate:"required,roomno"`
}

type LookupResponse struct {
	RoomNo    string `json:"room_no"`
	Mode      string `json:"mode"`
	KmcCd     string `json:"kmc_cd"`
	UserNm    string `json:"user_nm,omitempty"`
	MaxEatNum int    `json:"max_eat_num"`
}

type SaveMealRequest struct {
	RoomNo string `json:"room_no" validate:"required,roomno"`
	EatNum int    `json:"eat_num" validate:"gt=0"`
	// UserNm is the walk-in name entered in manual mode; it is only logged.
	UserNm string `json:"user_nm" validate:"omitempty,max=50"`
}

type SaveMealResponse struct {
	MealResponse
	Warning string `json:"warning,omitempty"`
	Message string `json:"message"`
}

func (r *SaveMealResponse) FromModel(m model.MealLog, clamped bool) {
	r.MealResponse.FromModel(m)
	r.Message = fmt.Sprintf("식사 인원 %d명이 성공적으로 등록되었습니다. (%s)", m.EatNum, status.MealCode(m.MealCd).Label())

	if clamped {
		r.Warning = WarningEatNumClamped
	}
}

type ListMealsRequest struct {
	Date   string `json:"date"    validate:"omitempty,ymd"`
	RoomNo string `json:"room_no" validate:"omitempty,roomno"`
}

type ExportMealsRequest struct {
	ListMealsRequest
	Encoding string `json:"encoding" validate:"omitempty,oneof=utf-8 euc-kr UTF-8 EUC-KR"`
}

type MealResponse struct {
	RoomNo    string `json:"room_no"`
	MealYmd   string `json:"meal_ymd"`
	MealTime  string `json:"meal_time"`
	MealCd    string `json:"meal_cd"`
	MealLabel string `json:"meal_label"`
	EatNum    int    `json:"eat_num"`
}

func (r *MealResponse) FromModel(m model.MealLog) {
	r.RoomNo = m.RoomNo
	r.MealYmd = datefmt.DisplayYMD(m.MealYmd)
	r.MealTime = datefmt.DisplayHHMM(m.MealTime)
	r.MealCd = m.MealCd
	r.MealLabel = status.MealCode(m.MealCd).Label()
	r.EatNum = m.EatNum
}

type ListMealsResponse struct {
	Date        string         `json:"date"`
	Meals       []MealResponse `json:"meals"`
	TotalData   int            `json:"total_data"`
	TotalEatNum int            `json:"total_eat_num"`
}

func (r *ListMealsResponse) FromModels(ymd string, logs []model.MealLog) {
	r.Date = datefmt.DisplayYMD(ymd)
	r.Meals = make([]MealResponse, 0, len(logs))

	for _, l := range logs {
		var meal MealResponse
		meal.FromModel(l)

		r.Meals = append(r.Meals, meal)
	}

	r.TotalData = len(logs)
	r.TotalEatNum = model.Total(logs)
}

// ExportFile is a rendered download; handlers write it as an attachment.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
