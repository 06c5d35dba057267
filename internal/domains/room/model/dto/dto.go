package dto

import (
	reservationModel "kmc/internal/domains/reservation/model"
	"kmc/internal/domains/room/model"
	"kmc/shared/datefmt"
)

const (
	OccupancyOccupied = "occupied"
	OccupancyVacant   = "vacant"

	NoGuestInfo = "정보 없음"
)

type ListRoomsRequest struct {
	Date      string `json:"date"      validate:"omitempty,ymd"`
	Status    string `json:"status"    validate:"omitempty,oneof=Z C T G"`
	Occupancy string `json:"occupancy" validate:"omitempty,oneof=occupied vacant"`
}

// Keep reports whether an occupancy passes the occupied/vacant filter.
func (l ListRoomsRequest) Keep(occupied bool) bool {
	switch l.Occupancy {
	case OccupancyOccupied:
		return occupied
	case OccupancyVacant:
		return !occupied
	default:
		return true
	}
}

type SaveChecksRequest struct {
	Cleaned   bool `json:"cleaned"`
	Equipped  bool `json:"equipped"`
	Inspected bool `json:"inspected"`
}

func (s SaveChecksRequest) Flags() model.Flags {
	return model.Flags{Cleaned: s.Cleaned, Equipped: s.Equipped, Inspected: s.Inspected}
}

type RoomStateResponse struct {
	RoomNo      string      `json:"room_no"`
	StatusCd    string      `json:"status_cd"`
	StatusLabel string      `json:"status_label"`
	StatusColor string      `json:"status_color"`
	Checks      model.Flags `json:"checks"`
}

func (r *RoomStateResponse) FromModel(room model.Room) {
	st := room.Status()

	r.RoomNo = room.RoomNo
	r.StatusCd = string(st)
	r.StatusLabel = st.Label()
	r.StatusColor = st.Color()
	r.Checks = room.Flags()
}

type RoomResponse struct {
	RoomStateResponse
	Occupied    bool   `json:"occupied"`
	UserNm      string `json:"user_nm,omitempty"`
	CheckInYmd  string `json:"check_in_ymd,omitempty"`
	CheckOutYmd string `json:"check_out_ymd,omitempty"`
}

func (r *RoomResponse) FromOccupancy(o reservationModel.Occupancy) {
	r.FromModel(o.Room)
	r.Occupied = o.Occupied()

	if o.Reservation != nil {
		r.UserNm = o.Reservation.UserNm
		r.CheckInYmd = datefmt.DisplayYMD(o.Reservation.CheckInYmd)
		r.CheckOutYmd = datefmt.DisplayYMD(o.Reservation.CheckOutYmd)
	}
}

type ListRoomsResponse struct {
	Date      string         `json:"date"`
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
	Occupied  int            `json:"occupied"`
}

type GuestSummary struct {
	KmcCd       string `json:"kmc_cd"`
	UserNm      string `json:"user_nm"`
	CheckInYmd  string `json:"check_in_ymd"`
	CheckOutYmd string `json:"check_out_ymd"`
	GuestNum    int    `json:"guest_num"`
}

type RoomDetailResponse struct {
	RoomStateResponse
	Date  string        `json:"date"`
	Guest *GuestSummary `json:"guest"`
	Info  string        `json:"info,omitempty"`
}

func (r *RoomDetailResponse) FromOccupancy(date string, o reservationModel.Occupancy) {
	r.FromModel(o.Room)
	r.Date = datefmt.DisplayYMD(date)

	if o.Reservation == nil {
		r.Info = NoGuestInfo

		return
	}

	r.Guest = &GuestSummary{
		KmcCd:       o.Reservation.KmcCd,
		UserNm:      o.Reservation.UserNm,
		CheckInYmd:  datefmt.DisplayYMD(o.Reservation.CheckInYmd),
		CheckOutYmd: datefmt.DisplayYMD(o.Reservation.CheckOutYmd),
		GuestNum:    o.Reservation.GuestNum,
	}
}
