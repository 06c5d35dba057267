package status

import "slices"

const unknownColor = "gray"

type RoomStatus string

const (
	RoomCleaning  RoomStatus = "Z"
	RoomCleaned   RoomStatus = "C"
	RoomSetUp     RoomStatus = "T"
	RoomInspected RoomStatus = "G"
)

var roomLabels = map[RoomStatus][2]string{
	RoomCleaning:  {"청소중", "yellow"},
	RoomCleaned:   {"청소완료", "green"},
	RoomSetUp:     {"셋팅완료", "purple"},
	RoomInspected: {"점검완료", "indigo"},
}

func (s RoomStatus) Valid() bool {
	_, ok := roomLabels[s]

	return ok
}

func (s RoomStatus) Label() string {
	if v, ok := roomLabels[s]; ok {
		return v[0]
	}

	return string(s)
}

func (s RoomStatus) Color() string {
	if v, ok := roomLabels[s]; ok {
		return v[1]
	}

	return unknownColor
}

type ReservationStatus string

const (
	Reserved   ReservationStatus = "S"
	CheckedIn  ReservationStatus = "I"
	CheckedOut ReservationStatus = "O"
)

var reservationLabels = map[ReservationStatus]string{
	Reserved:   "예약",
	CheckedIn:  "입실",
	CheckedOut: "퇴실",
}

// ActiveStatuses are reservations that occupy or will occupy a room.
var ActiveStatuses = []ReservationStatus{CheckedIn, Reserved}

// ListedStatuses are the statuses shown on reservation screens.
var ListedStatuses = []ReservationStatus{Reserved, CheckedIn, CheckedOut}

func (s ReservationStatus) Valid() bool {
	_, ok := reservationLabels[s]

	return ok
}

func (s ReservationStatus) Label() string {
	if v, ok := reservationLabels[s]; ok {
		return v
	}

	return string(s)
}

func (s ReservationStatus) Active() bool {
	return slices.Contains(ActiveStatuses, s)
}

type MealCode string

const (
	MealMorning MealCode = "M"
	MealLunch   MealCode = "A"
	MealEvening MealCode = "E"
	MealOther   MealCode = "T"
)

var mealLabels = map[MealCode]string{
	MealMorning: "조식",
	MealLunch:   "중식",
	MealEvening: "석식",
	MealOther:   "기타",
}

func (c MealCode) Label() string {
	if v, ok := mealLabels[c]; ok {
		return v
	}

	return string(c)
}

type RequestStatus string

const (
	RequestWaiting  RequestStatus = "W"
	RequestApproved RequestStatus = "S"
	RequestRejected RequestStatus = "C"
)

func (s RequestStatus) Label() string {
	switch s {
	case RequestApproved:
		return "승인"
	case RequestRejected:
		return "반려"
	default:
		return "대기중"
	}
}

type PTOCode string

const (
	PTOFullDay       PTOCode = "AL"
	PTOMorningHalf   PTOCode = "MO"
	PTOAfternoonHalf PTOCode = "AF"
)

func (c PTOCode) Label() string {
	switch c {
	case PTOMorningHalf:
		return "오전 반차"
	case PTOAfternoonHalf:
		return "오후 반차"
	default:
		return "전일"
	}
}

const (
	Yes = "Y"
	No  = "N"
)

func YN(b bool) string {
	if b {
		return Yes
	}

	return No
}

func IsYes(value string) bool {
	return value == Yes
}

// Strings converts a status slice to plain strings for query filters.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out
}
