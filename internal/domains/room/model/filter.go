package model

import (
	"kmc/shared/dto"
	"kmc/shared/status"
)

func InUse() dto.Filter {
	return dto.Filter{Field: FieldUseYn, Value: status.Yes, Operator: dto.FilterOperatorEq, Table: TableName}
}

func WithStatus(st status.RoomStatus) dto.Filter {
	return dto.Filter{Field: FieldStatusCd, Value: string(st), Operator: dto.FilterOperatorEq, Table: TableName}
}
