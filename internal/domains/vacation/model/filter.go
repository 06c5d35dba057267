package model

import (
	"kmc/shared/dto"
)

// BookedOn finds vacation days already recorded for email on any of days.
// Rows of exceptReqNo are ignored so a request can be resubmitted over its own dates.
func BookedOn(email string, days []string, exceptReqNo int) dto.FilterGroup {
	filters := []any{
		dto.Filter{Field: FieldEmail, Value: email, Operator: dto.FilterOperatorEq, Table: TableDay},
		dto.Filter{Field: FieldStatusCd, Value: KindVacation, Operator: dto.FilterOperatorEq, Table: TableDay},
		dto.Filter{Field: FieldStartDate, Value: days, Operator: dto.FilterOperatorIn, Table: TableDay},
	}

	if exceptReqNo > 0 {
		filters = append(filters, dto.Filter{Field: FieldReqNo, Value: exceptReqNo, Operator: dto.FilterOperatorNotEq, Table: TableDay})
	}

	return dto.FilterGroup{Filters: filters}
}

func ByReqNo(table string, reqNo int) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldReqNo, Value: reqNo, Operator: dto.FilterOperatorEq, Table: table},
		},
	}
}

// Vacations lists vacation requests, optionally only those of requester.
func Vacations(requester string) dto.FilterGroup {
	filters := []any{
		dto.Filter{Field: FieldReqCd, Value: KindVacation, Operator: dto.FilterOperatorEq, Table: TableRequest},
	}

	if requester != "" {
		filters = append(filters, dto.Filter{Field: FieldReqEmail, Value: requester, Operator: dto.FilterOperatorEq, Table: TableRequest})
	}

	return dto.FilterGroup{Filters: filters}
}
