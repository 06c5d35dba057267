package model

import (
	"kmc/shared/dto"
)

func ByEmail(email string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldEmail, Value: email, Operator: dto.FilterOperatorEq, Table: TableName},
		},
	}
}
