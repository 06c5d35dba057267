package model

import "time"

// Metadata holds the audit columns shared by the kmc_* tables.
type Metadata struct {
	RegDate *time.Time `db:"reg_date"`
	RegID   *string    `db:"reg_id"`
	UpdDate *time.Time `db:"upd_date"`
	UpdID   *string    `db:"upd_id"`
}

func NewMetadata(user string, now time.Time) Metadata {
	return Metadata{
		RegDate: &now,
		RegID:   &user,
	}
}
