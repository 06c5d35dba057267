package model

import (
	"kmc/shared/dto"
)

func ByID(id int) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldID, Value: id, Operator: dto.FilterOperatorEq, Table: TableMissionary},
		},
	}
}

// OwnedBy selects the rows of a child table that belong to the missionary with serial id.
func OwnedBy(table string, id int) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldMissionaryID, Value: id, Operator: dto.FilterOperatorEq, Table: table},
		},
	}
}

// NameContains matches the korean name case-insensitively; an empty keyword matches everyone.
func NameContains(keyword string) dto.FilterGroup {
	if keyword == "" {
		return dto.FilterGroup{}
	}

	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldKoreanName, Value: keyword, Operator: dto.FilterOperatorLike, Table: TableMissionary},
		},
	}
}
