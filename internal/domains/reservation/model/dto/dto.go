package dto

import (
	"kmc/internal/domains/reservation/model"
	"kmc/shared/datefmt"
	gDto "kmc/shared/dto"
	gModel "kmc/shared/model"
	"kmc/shared/status"
	"time"
)

const (
	DefaultCheckInHHMM  = "1400"
	DefaultCheckOutHHMM = "1100"
	DefaultGuestNum     = 1
)

type CreateReservationRequest struct {
	UserNm       string `json:"user_nm"        validate:"required,max=100"`
	UserEmail    string `json:"user_email"     validate:"omitempty,email"`
	RoomNo       string `json:"room_no"        validate:"omitempty,max=50"`
	CheckInYmd   string `json:"check_in_ymd"   validate:"required,ymd"`
	CheckOutYmd  string `json:"check_out_ymd"  validate:"required,ymd"`
	CheckInHhmm  string `json:"check_in_hhmm"  validate:"omitempty,hhmm"`
	CheckOutHhmm string `json:"check_out_hhmm" validate:"omitempty,hhmm"`
	GuestNum     int    `json:"guest_num"      validate:"omitempty,min=1"`
	PhoneNum     string `json:"phone_num"      validate:"omitempty,max=30"`
	LocationNm   string `json:"location_nm"    validate:"omitempty,max=100"`
	GroupDesc    string `json:"group_desc"     validate:"omitempty,max=200"`
	Memo         string `json:"memo"           validate:"omitempty,max=1000"`
}

func (c *CreateReservationRequest) ToModel(user, kmcCd string, seqNo int, now time.Time) model.Reservation {
	res := model.Reservation{
		KmcCd:        kmcCd,
		SeqNo:        seqNo,
		UserNm:       c.UserNm,
		UserEmail:    c.UserEmail,
		RoomNo:       c.RoomNo,
		CheckInYmd:   datefmt.StripDashes(c.CheckInYmd),
		CheckOutYmd:  datefmt.StripDashes(c.CheckOutYmd),
		CheckInHhmm:  datefmt.StripColon(c.CheckInHhmm),
		CheckOutHhmm: datefmt.StripColon(c.CheckOutHhmm),
		GuestNum:     c.GuestNum,
		StatusCd:     string(status.Reserved),
		PhoneNum:     c.PhoneNum,
		LocationNm:   c.LocationNm,
		GroupDesc:    c.GroupDesc,
		Memo:         c.Memo,
		Metadata:     gModel.NewMetadata(user, now),
	}

	if res.CheckInHhmm == "" {
		res.CheckInHhmm = DefaultCheckInHHMM
	}

	if res.CheckOutHhmm == "" {
		res.CheckOutHhmm = DefaultCheckOutHHMM
	}

	if res.GuestNum == 0 {
		res.GuestNum = DefaultGuestNum
	}

	return res
}

// UpdateReservationRequest only writes the fields that are set.
type UpdateReservationRequest struct {
	UserNm       string  `db:"user_nm"        json:"user_nm"        validate:"omitempty,max=100"`
	RoomNo       string  `db:"room_no"        json:"room_no"        validate:"omitempty,max=50"`
	CheckInYmd   string  `db:"check_in_ymd"   json:"check_in_ymd"   validate:"omitempty,ymd"`
	CheckOutYmd  string  `db:"check_out_ymd"  json:"check_out_ymd"  validate:"omitempty,ymd"`
	CheckInHhmm  string  `db:"check_in_hhmm"  json:"check_in_hhmm"  validate:"omitempty,hhmm"`
	CheckOutHhmm string  `db:"check_out_hhmm" json:"check_out_hhmm" validate:"omitempty,hhmm"`
	GuestNum     *int    `db:"guest_num"      json:"guest_num"      validate:"omitempty,min=1"`
	PhoneNum     *string `db:"phone_num"      json:"phone_num"      validate:"omitempty,max=30"`
	LocationNm   *string `db:"location_nm"    json:"location_nm"    validate:"omitempty,max=100"`
	GroupDesc    *string `db:"group_desc"     json:"group_desc"     validate:"omitempty,max=200"`
	Memo         *string `db:"memo"           json:"memo"           validate:"omitempty,max=1000"`
}

// Normalize converts display dates and times to their stored forms.
func (u *UpdateReservationRequest) Normalize() {
	u.CheckInYmd = datefmt.StripDashes(u.CheckInYmd)
	u.CheckOutYmd = datefmt.StripDashes(u.CheckOutYmd)
	u.CheckInHhmm = datefmt.StripColon(u.CheckInHhmm)
	u.CheckOutHhmm = datefmt.StripColon(u.CheckOutHhmm)
}

func (u *UpdateReservationRequest) Empty() bool {
	return u.UserNm == "" && u.RoomNo == "" && u.CheckInYmd == "" && u.CheckOutYmd == "" &&
		u.CheckInHhmm == "" && u.CheckOutHhmm == "" && u.GuestNum == nil && u.PhoneNum == nil &&
		u.LocationNm == nil && u.GroupDesc == nil && u.Memo == nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=S I O"`
}

type ReservationResponse struct {
	KmcCd        string `json:"kmc_cd"`
	SeqNo        int    `json:"seq_no"`
	UserNm       string `json:"user_nm"`
	SpouseNm     string `json:"spouse_nm,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	RoomNo       string `json:"room_no"`
	CheckInYmd   string `json:"check_in_ymd"`
	CheckOutYmd  string `json:"check_out_ymd"`
	CheckInHhmm  string `json:"check_in_hhmm"`
	CheckOutHhmm string `json:"check_out_hhmm"`
	GuestNum     int    `json:"guest_num"`
	StatusCd     string `json:"status_cd"`
	StatusLabel  string `json:"status_label"`
	PhoneNum     string `json:"phone_num"`
	LocationNm   string `json:"location_nm"`
	GroupDesc    string `json:"group_desc"`
	Memo         string `json:"memo"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.KmcCd = m.KmcCd
	r.SeqNo = m.SeqNo
	r.UserNm = m.UserNm
	r.SpouseNm = m.SpouseNm
	r.UserEmail = m.UserEmail
	r.RoomNo = m.RoomNo
	r.CheckInYmd = datefmt.DisplayYMD(m.CheckInYmd)
	r.CheckOutYmd = datefmt.DisplayYMD(m.CheckOutYmd)
	r.CheckInHhmm = datefmt.DisplayHHMM(m.CheckInHhmm)
	r.CheckOutHhmm = datefmt.DisplayHHMM(m.CheckOutHhmm)
	r.GuestNum = m.GuestNum
	r.StatusCd = m.StatusCd
	r.StatusLabel = m.Status().Label()
	r.PhoneNum = m.PhoneNum
	r.LocationNm = m.LocationNm
	r.GroupDesc = m.GroupDesc
	r.Memo = m.Memo
	r.Metadata.FromModel(m.Metadata)
}

type ListReservationsResponse struct {
	Month        string                `json:"month"`
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (l *ListReservationsResponse) FromModels(month string, models []model.Reservation) {
	l.Month = month
	l.TotalData = len(models)

	l.Reservations = make([]ReservationResponse, len(models))
	for i, m := range models {
		l.Reservations[i].FromModel(m)
	}
}
