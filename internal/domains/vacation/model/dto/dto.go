package dto

import (
	"kmc/internal/domains/vacation/model"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	"kmc/shared/status"
	"kmc/shared/timezone"
	"time"
)

type SubmitVacationRequest struct {
	StartDate string `json:"start_date" validate:"required,ymd"`
	EndDate   string `json:"end_date"   validate:"required,ymd"`
	HalfDay   bool   `json:"half_day"`
	Morning   bool   `json:"morning"`
	Desc      string `json:"desc"       validate:"omitempty,max=500"`
}

func (r *SubmitVacationRequest) Plan() (model.Plan, error) {
	return model.NewPlan(r.StartDate, r.EndDate, r.HalfDay, r.Morning)
}

type SubmitVacationResponse struct {
	ReqNo    int      `json:"req_no"`
	Days     []string `json:"days"`
	PtoCd    string   `json:"pto_cd"`
	PtoLabel string   `json:"pto_label"`
	Message  string   `json:"message"`
}

func (r *SubmitVacationResponse) FromPlan(reqNo int, plan model.Plan, message string) {
	r.ReqNo = reqNo
	r.PtoCd = string(plan.PTO)
	r.PtoLabel = plan.PTO.Label()
	r.Message = message

	r.Days = make([]string, 0, len(plan.Days))
	for _, day := range plan.Days {
		r.Days = append(r.Days, datefmt.DisplayYMD(day))
	}
}

type ListVacationsRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type RespondVacationRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Desc    string `json:"desc"    validate:"omitempty,max=500"`
}

func (r *RespondVacationRequest) Status() status.RequestStatus {
	if r.Approve != nil && *r.Approve {
		return status.RequestApproved
	}

	return status.RequestRejected
}

type VacationResponse struct {
	ReqNo       int    `json:"req_no"`
	ReqEmail    string `json:"req_email"`
	ReqName     string `json:"req_name"`
	ReqDate     string `json:"req_date"`
	ReqDesc     string `json:"req_desc"`
	ResEmail    string `json:"res_email,omitempty"`
	ResName     string `json:"res_name,omitempty"`
	ResDate     string `json:"res_date,omitempty"`
	ResDesc     string `json:"res_desc,omitempty"`
	ResCd       string `json:"res_cd"`
	StatusLabel string `json:"status_label"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PtoCd       string `json:"pto_cd"`
	PtoLabel    string `json:"pto_label"`
	Editable    bool   `json:"editable"`
}

func (r *VacationResponse) FromModel(v model.RequestView) {
	r.ReqNo = v.ReqNo
	r.ReqEmail = v.ReqEmail
	r.ReqName = deref(v.ReqName)
	r.ReqDate = formatTime(&v.ReqDate)
	r.ReqDesc = v.ReqDesc
	r.ResEmail = deref(v.ResEmail)
	r.ResName = deref(v.ResName)
	r.ResDate = formatTime(v.ResDate)
	r.ResDesc = deref(v.ResDesc)
	r.ResCd = v.ResCd
	r.StatusLabel = status.RequestStatus(v.ResCd).Label()
	r.StartDate = datefmt.DisplayYMD(deref(v.StartYmd))
	r.EndDate = datefmt.DisplayYMD(deref(v.EndYmd))
	r.PtoCd = deref(v.PtoCd)
	r.PtoLabel = status.PTOCode(r.PtoCd).Label()
	r.Editable = status.RequestStatus(v.ResCd) != status.RequestApproved
}

type ListVacationsResponse struct {
	Vacations []VacationResponse `json:"vacations"`
	TotalData int                `json:"total_data"`
}

func (r *ListVacationsResponse) FromModels(views []model.RequestView) {
	r.Vacations = make([]VacationResponse, 0, len(views))

	for _, v := range views {
		var vacation VacationResponse
		vacation.FromModel(v)

		r.Vacations = append(r.Vacations, vacation)
	}

	r.TotalData = len(r.Vacations)
}

func deref(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(*t, constant.DateFormat)
}
