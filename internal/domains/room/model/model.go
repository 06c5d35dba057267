package model

import (
	"kmc/shared/status"
)

const (
	TableName  = "kmc_rooms"
	EntityName = "room"

	FieldRoomNo     = "room_no"
	FieldOrgCd      = "org_cd"
	FieldStatusCd   = "status_cd"
	FieldClearChkYn = "clear_chk_yn"
	FieldBipumChkYn = "bipum_chk_yn"
	FieldInspChkYn  = "insp_chk_yn"
	FieldUseYn      = "use_yn"
	FieldUpdEeno    = "upd_eeno"
	FieldUpdDate    = "upd_date"
)

type Room struct {
	RoomNo     string `db:"room_no"`
	OrgCd      string `db:"org_cd"`
	StatusCd   string `db:"status_cd"`
	ClearChkYn string `db:"clear_chk_yn"`
	BipumChkYn string `db:"bipum_chk_yn"`
	InspChkYn  string `db:"insp_chk_yn"`
	UseYn      string `db:"use_yn"`
	UpdEeno    string `db:"upd_eeno"`
	UpdDate    string `db:"upd_date"`
}

func (r Room) Flags() Flags {
	return Flags{
		Cleaned:   status.IsYes(r.ClearChkYn),
		Equipped:  status.IsYes(r.BipumChkYn),
		Inspected: status.IsYes(r.InspChkYn),
	}
}

// Status returns the stored status code, falling back to cleaning for blank rows.
func (r Room) Status() status.RoomStatus {
	if r.StatusCd == "" {
		return status.RoomCleaning
	}

	return status.RoomStatus(r.StatusCd)
}
