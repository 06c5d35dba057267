package model

import (
	roomModel "kmc/internal/domains/room/model"
	"kmc/shared/datefmt"
	"strings"
)

// Occupancy pairs a room with the reservation currently assigned to it, if any.
type Occupancy struct {
	Room        roomModel.Room
	Reservation *Reservation
}

func (o Occupancy) Occupied() bool {
	return o.Reservation != nil
}

// holds reports whether the reservation's room field names the room. A reservation may list
// several rooms ("201,202"), so containment is used instead of equality.
func holds(reservation Reservation, roomNo string) bool {
	return roomNo != "" && strings.Contains(reservation.RoomNo, roomNo)
}

// Match assigns each room the first active reservation, in input order, that names the room
// and whose stay contains asOf. Callers order reservations by check-in so the earliest wins.
func Match(rooms []roomModel.Room, reservations []Reservation, asOf string) []Occupancy {
	out := make([]Occupancy, len(rooms))

	for i, room := range rooms {
		out[i] = Occupancy{Room: room}

		for j := range reservations {
			candidate := reservations[j]
			if !holds(candidate, room.RoomNo) || !candidate.Status().Active() {
				continue
			}

			if !datefmt.Within(asOf, candidate.CheckInYmd, candidate.CheckOutYmd) {
				continue
			}

			out[i].Reservation = &candidate

			break
		}
	}

	return out
}

// MatchUpcoming pairs rooms with the first reservation naming them, without a date test.
// Rooms with no candidate are dropped.
func MatchUpcoming(rooms []roomModel.Room, reservations []Reservation) []Occupancy {
	out := make([]Occupancy, 0, len(rooms))

	for _, room := range rooms {
		for j := range reservations {
			candidate := reservations[j]
			if !holds(candidate, room.RoomNo) {
				continue
			}

			out = append(out, Occupancy{Room: room, Reservation: &candidate})

			break
		}
	}

	return out
}
