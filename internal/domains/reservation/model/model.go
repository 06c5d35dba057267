package model

import (
	"kmc/shared/model"
	"kmc/shared/status"
)

const (
	TableName  = "kmc_info"
	EntityName = "reservation"

	FieldKmcCd       = "kmc_cd"
	FieldSeqNo       = "seq_no"
	FieldUserNm      = "user_nm"
	FieldRoomNo      = "room_no"
	FieldCheckInYmd  = "check_in_ymd"
	FieldCheckOutYmd = "check_out_ymd"
	FieldStatusCd    = "status_cd"
	FieldUpdDate     = "upd_date"
	FieldUpdID       = "upd_id"

	// MatchOrder is the ordering Match relies on: earliest check-in first.
	MatchOrder = FieldCheckInYmd + ", " + FieldRoomNo
)

// Reservation is one row of kmc_info, keyed by (kmc_cd, seq_no).
type Reservation struct {
	KmcCd                   string `db:"kmc_cd"`
	SeqNo                   int    `db:"seq_no"`
	UserNm                  string `db:"user_nm"`
	SpouseNm                string `db:"spouse_nm"`
	UserEmail               string `db:"user_email"`
	RoomNo                  string `db:"room_no"`
	CheckInYmd              string `db:"check_in_ymd"`
	CheckOutYmd             string `db:"check_out_ymd"`
	CheckInHhmm             string `db:"check_in_hhmm"`
	CheckOutHhmm            string `db:"check_out_hhmm"`
	GuestNum                int    `db:"guest_num"`
	StatusCd                string `db:"status_cd"`
	Memo                    string `db:"memo"`
	PhoneNum                string `db:"phone_num"`
	LocationNm              string `db:"location_nm"`
	GroupDesc               string `db:"group_desc"`
	DispatchAgencyNm        string `db:"dispatch_agency_nm"`
	DispatchDmnNm           string `db:"dispatch_dmn_nm"`
	DispatchChurchNm        string `db:"dispatch_church_nm"`
	DispatchAgencyPhone1Num string `db:"dispatch_agency_phone_1_num"`
	Hc                      string `db:"hc"`
	Ot                      string `db:"ot"`
	ProofDocYn              string `db:"proof_doc_yn"`
	model.Metadata
}

func (r Reservation) Status() status.ReservationStatus {
	return status.ReservationStatus(r.StatusCd)
}
