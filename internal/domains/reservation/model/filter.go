package model

import (
	"kmc/shared/dto"
	"kmc/shared/status"
)

// ByKey selects one reservation row by its natural key.
func ByKey(kmcCd string, seqNo int) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldKmcCd, Value: kmcCd, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldSeqNo, Value: seqNo, Operator: dto.FilterOperatorEq, Table: TableName},
		},
	}
}

func StatusIn(statuses ...status.ReservationStatus) dto.Filter {
	return dto.Filter{
		Field:    FieldStatusCd,
		Value:    status.Strings(statuses),
		Operator: dto.FilterOperatorIn,
		Table:    TableName,
	}
}

// ActiveOn matches stays that include day, both ends inclusive.
func ActiveOn(day string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			StatusIn(status.ActiveStatuses...),
			dto.Filter{ArgName: "active_from", Field: FieldCheckInYmd, Value: day, Operator: dto.FilterOperatorLessEq, Table: TableName},
			dto.Filter{ArgName: "active_to", Field: FieldCheckOutYmd, Value: day, Operator: dto.FilterOperatorGreaterEq, Table: TableName},
		},
	}
}

// TouchesMonth matches rows whose check-in or check-out falls in the YYYYMM month.
func TouchesMonth(month string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "month_in", Field: FieldCheckInYmd, Value: month, Operator: dto.FilterOperatorPrefix, Table: TableName},
			dto.Filter{ArgName: "month_out", Field: FieldCheckOutYmd, Value: month, Operator: dto.FilterOperatorPrefix, Table: TableName},
		},
	}
}

func CheckInOn(day string) dto.Filter {
	return dto.Filter{Field: FieldCheckInYmd, Value: day, Operator: dto.FilterOperatorEq, Table: TableName}
}

func CheckOutOn(day string) dto.Filter {
	return dto.Filter{Field: FieldCheckOutYmd, Value: day, Operator: dto.FilterOperatorEq, Table: TableName}
}

// CheckInBetween matches check-in dates strictly between after and before.
func CheckInBetween(after, before string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{ArgName: "check_in_after", Field: FieldCheckInYmd, Value: after, Operator: dto.FilterOperatorGreater, Table: TableName},
			dto.Filter{ArgName: "check_in_before", Field: FieldCheckInYmd, Value: before, Operator: dto.FilterOperatorLess, Table: TableName},
		},
	}
}

// HoldsRoom matches rows whose room field names roomNo, including multi-room rows.
func HoldsRoom(roomNo string) dto.Filter {
	return dto.Filter{Field: FieldRoomNo, Value: roomNo, Operator: dto.FilterOperatorLike, Table: TableName}
}
