package dto

import (
	reservationModel "kmc/internal/domains/reservation/model"
	"kmc/shared/datefmt"
)

type MovementResponse struct {
	KmcCd       string `json:"kmc_cd"`
	SeqNo       int    `json:"seq_no"`
	UserNm      string `json:"user_nm"`
	RoomNo      string `json:"room_no"`
	CheckInYmd  string `json:"check_in_ymd"`
	CheckOutYmd string `json:"check_out_ymd"`
	Time        string `json:"time"`
	GuestNum    int    `json:"guest_num"`
	StatusCd    string `json:"status_cd"`
	StatusLabel string `json:"status_label"`
}

func (m *MovementResponse) FromModel(r reservationModel.Reservation, hhmm string) {
	m.KmcCd = r.KmcCd
	m.SeqNo = r.SeqNo
	m.UserNm = r.UserNm
	m.RoomNo = r.RoomNo
	m.CheckInYmd = datefmt.DisplayYMD(r.CheckInYmd)
	m.CheckOutYmd = datefmt.DisplayYMD(r.CheckOutYmd)
	m.Time = datefmt.DisplayHHMM(hhmm)
	m.GuestNum = r.GuestNum
	m.StatusCd = r.StatusCd
	m.StatusLabel = r.Status().Label()
}

type CleaningResponse struct {
	RoomNo      string `json:"room_no"`
	NextCheckIn string `json:"next_check_in"`
	UserNm      string `json:"user_nm"`
}

type DashboardResponse struct {
	Date     string             `json:"date"`
	Incoming []MovementResponse `json:"incoming"`
	Outgoing []MovementResponse `json:"outgoing"`
	Cleaning []CleaningResponse `json:"cleaning"`
}

func (d *DashboardResponse) SetIncoming(rows []reservationModel.Reservation) {
	d.Incoming = make([]MovementResponse, len(rows))
	for i, r := range rows {
		d.Incoming[i].FromModel(r, r.CheckInHhmm)
	}
}

func (d *DashboardResponse) SetOutgoing(rows []reservationModel.Reservation) {
	d.Outgoing = make([]MovementResponse, len(rows))
	for i, r := range rows {
		d.Outgoing[i].FromModel(r, r.CheckOutHhmm)
	}
}

func (d *DashboardResponse) SetCleaning(occupancies []reservationModel.Occupancy) {
	d.Cleaning = make([]CleaningResponse, len(occupancies))
	for i, o := range occupancies {
		d.Cleaning[i] = CleaningResponse{
			RoomNo:      o.Room.RoomNo,
			NextCheckIn: datefmt.DisplayYMD(o.Reservation.CheckInYmd),
			UserNm:      o.Reservation.UserNm,
		}
	}
}
