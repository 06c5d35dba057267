package model

import (
	"slices"
	"strings"
)

const (
	TableName  = "kms_info_tmp"
	EntityName = "staging_reservation"

	FieldSeqNo = "seq_no"
)

// Header is the exact first row an import sheet must carry. Order and length both matter.
var Header = []string{
	"No.", "코드", "성명", "배우자", "파송기관단체", "파송기관교단", "파송기관교회", "파송국가",
	"연락처", "이메일", "입실일", "입실시간", "퇴실일", "퇴실시간", "입실인원", "가족사항",
	"연락처", "힐링센터", "OT", "증빙서류", "객실선택", "상태",
}

// StagingRow is one spreadsheet row in kms_info_tmp. Fields follow Header positionally.
type StagingRow struct {
	SeqNo                   string `db:"seq_no"`
	KmcCd                   string `db:"kmc_cd"`
	UserNm                  string `db:"user_nm"`
	SpouseNm                string `db:"spouse_nm"`
	DispatchAgencyNm        string `db:"dispatch_agency_nm"`
	DispatchDmnNm           string `db:"dispatch_dmn_nm"`
	DispatchChurchNm        string `db:"dispatch_church_nm"`
	LocationNm              string `db:"location_nm"`
	DispatchAgencyPhone1Num string `db:"dispatch_agency_phone_1_num"`
	UserEmail               string `db:"user_email"`
	CheckInYmd              string `db:"check_in_ymd"`
	CheckInHhmm             string `db:"check_in_hhmm"`
	CheckOutYmd             string `db:"check_out_ymd"`
	CheckOutHhmm            string `db:"check_out_hhmm"`
	GuestNum                string `db:"guest_num"`
	GroupDesc               string `db:"group_desc"`
	PhoneNum                string `db:"phone_num"`
	Hc                      string `db:"hc"`
	Ot                      string `db:"ot"`
	ProofDocYn              string `db:"proof_doc_yn"`
	RoomNo                  string `db:"room_no"`
	StatusCd                string `db:"status_cd"`
}

// HeaderMatches reports whether row is exactly Header.
func HeaderMatches(row []string) bool {
	return slices.Equal(row, Header)
}

// MapRow maps cells onto a staging row by position. Short rows are padded with empty cells.
// The second result is false for rows with no content.
func MapRow(cells []string) (StagingRow, bool) {
	padded := make([]string, len(Header))
	copy(padded, cells)

	blank := true

	for i := range padded {
		padded[i] = strings.TrimSpace(padded[i])
		if padded[i] != "" {
			blank = false
		}
	}

	if blank {
		return StagingRow{}, false
	}

	return StagingRow{
		SeqNo:                   padded[0],
		KmcCd:                   padded[1],
		UserNm:                  padded[2],
		SpouseNm:                padded[3],
		DispatchAgencyNm:        padded[4],
		DispatchDmnNm:           padded[5],
		DispatchChurchNm:        padded[6],
		LocationNm:              padded[7],
		DispatchAgencyPhone1Num: padded[8],
		UserEmail:               padded[9],
		CheckInYmd:              padded[10],
		CheckInHhmm:             padded[11],
		CheckOutYmd:             padded[12],
		CheckOutHhmm:            padded[13],
		GuestNum:                padded[14],
		GroupDesc:               padded[15],
		PhoneNum:                padded[16],
		Hc:                      padded[17],
		Ot:                      padded[18],
		ProofDocYn:              padded[19],
		RoomNo:                  padded[20],
		StatusCd:                padded[21],
	}, true
}

// MapRows maps every data row after the header, skipping blank rows.
func MapRows(rows [][]string) []StagingRow {
	out := []StagingRow{}

	for _, cells := range rows {
		if row, ok := MapRow(cells); ok {
			out = append(out, row)
		}
	}

	return out
}
