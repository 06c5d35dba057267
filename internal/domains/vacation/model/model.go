package model

import (
	"errors"
	"kmc/shared/datefmt"
	"kmc/shared/status"
	"time"
)

const (
	TableRequest = "kmc_requests"
	TableDay     = "kmc_guentae_mgmt"
	TablePTO     = "kmc_pto_mgmt"

	EntityRequest = "vacation_request"
	EntityDay     = "vacation_day"
	EntityPTO     = "vacation_pto"

	FieldReqNo     = "req_no"
	FieldReqCd     = "req_cd"
	FieldReqDate   = "req_date"
	FieldReqDesc   = "req_desc"
	FieldReqEmail  = "req_email"
	FieldResCd     = "res_cd"
	FieldResEmail  = "res_email"
	FieldResDate   = "res_date"
	FieldResDesc   = "res_desc"
	FieldEmail     = "email"
	FieldStartDate = "start_date"
	FieldStatusCd  = "status_cd"
	FieldStartYmd  = "start_ymd"
	FieldEndYmd    = "end_ymd"
	FieldPtoCd     = "pto_cd"

	// KindVacation is the req_cd of vacation requests and the status_cd of their day rows.
	KindVacation = "VC"
)

var ErrHalfDayRange = errors.New("반차는 하루만 신청할 수 있습니다.")

// Request is one row of kmc_requests. req_no is assigned by the database.
type Request struct {
	ReqNo    int        `db:"req_no"`
	ReqEmail string     `db:"req_email"`
	ReqDate  time.Time  `db:"req_date"`
	ReqCd    string     `db:"req_cd"`
	ReqDesc  string     `db:"req_desc"`
	ResEmail *string    `db:"res_email"`
	ResDate  *time.Time `db:"res_date"`
	ResCd    string     `db:"res_cd"`
	ResDesc  *string    `db:"res_desc"`
}

func (r Request) Approved() bool {
	return status.RequestStatus(r.ResCd) == status.RequestApproved
}

// Day is one calendar day of a vacation in kmc_guentae_mgmt.
type Day struct {
	Email     string `db:"email"`
	Seq       int    `db:"seq"`
	StartDate string `db:"start_date"`
	EndDate   string `db:"end_date"`
	StatusCd  string `db:"status_cd"`
	ReqNo     int    `db:"req_no"`
	PtoCd     string `db:"pto_cd"`
}

// PTO is the request-level summary row in kmc_pto_mgmt.
type PTO struct {
	ReqEmail string `db:"req_email"`
	ReqNo    int    `db:"req_no"`
	StartYmd string `db:"start_ymd"`
	EndYmd   string `db:"end_ymd"`
	PtoCd    string `db:"pto_cd"`
}

// RequestView joins a request with requester and responder names and its PTO summary.
type RequestView struct {
	ReqNo    int        `db:"req_no"`
	ReqEmail string     `db:"req_email"`
	ReqDate  time.Time  `db:"req_date"`
	ReqDesc  string     `db:"req_desc"`
	ResEmail *string    `db:"res_email"`
	ResDate  *time.Time `db:"res_date"`
	ResCd    string     `db:"res_cd"`
	ResDesc  *string    `db:"res_desc"`
	ReqName  *string    `db:"req_name"  table:"requester" column:"name"`
	ResName  *string    `db:"res_name"  table:"responder" column:"name"`
	StartYmd *string    `db:"start_ymd" table:"pto"       column:"start_ymd"`
	EndYmd   *string    `db:"end_ymd"   table:"pto"       column:"end_ymd"`
	PtoCd    *string    `db:"pto_cd"    table:"pto"       column:"pto_cd"`
}

func (RequestView) GetJoinQuery() string {
	return "LEFT JOIN kmc_adms requester ON requester.email = kmc_requests.req_email " +
		"LEFT JOIN kmc_adms responder ON responder.email = kmc_requests.res_email " +
		"LEFT JOIN kmc_pto_mgmt pto ON pto.req_no = kmc_requests.req_no"
}

// Plan is a validated vacation period expanded into individual days.
type Plan struct {
	Start string
	End   string
	Days  []string
	PTO   status.PTOCode
}

// NewPlan expands start..end inclusively. A half day must be a single day and is
// recorded as a morning or afternoon half.
func NewPlan(start, end string, halfDay, morning bool) (Plan, error) {
	start, end = datefmt.StripDashes(start), datefmt.StripDashes(end)

	days, err := datefmt.ExpandRange(start, end)
	if err != nil {
		return Plan{}, err //nolint:wrapcheck
	}

	plan := Plan{Start: start, End: end, Days: days, PTO: status.PTOFullDay}

	if halfDay {
		if start != end {
			return Plan{}, ErrHalfDayRange
		}

		plan.PTO = status.PTOAfternoonHalf
		if morning {
			plan.PTO = status.PTOMorningHalf
		}
	}

	return plan, nil
}

// DayRows builds the per-day rows stored for a request.
func (p Plan) DayRows(email string, reqNo int) []Day {
	rows := make([]Day, 0, len(p.Days))
	for _, day := range p.Days {
		rows = append(rows, Day{
			Email:     email,
			Seq:       1,
			StartDate: day,
			EndDate:   day,
			StatusCd:  KindVacation,
			ReqNo:     reqNo,
			PtoCd:     string(p.PTO),
		})
	}

	return rows
}

func (p Plan) PTORow(email string, reqNo int) PTO {
	return PTO{
		ReqEmail: email,
		ReqNo:    reqNo,
		StartYmd: p.Start,
		EndYmd:   p.End,
		PtoCd:    string(p.PTO),
	}
}
