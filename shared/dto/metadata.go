package dto

import (
	"kmc/shared/constant"
	"kmc/shared/model"
	"kmc/shared/timezone"
	"time"
)

type Metadata struct {
	RegDate string `json:"reg_date,omitempty"`
	RegID   string `json:"reg_id,omitempty"`
	UpdDate string `json:"upd_date,omitempty"`
	UpdID   string `json:"upd_id,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.RegDate = formatTime(model.RegDate)
	m.UpdDate = formatTime(model.UpdDate)
	m.RegID = deref(model.RegID)
	m.UpdID = deref(model.UpdID)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(*t, constant.DateFormat)
}

func deref(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}
