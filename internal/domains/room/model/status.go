package model

import (
	"errors"
	"kmc/shared/status"
)

// Flag names a single housekeeping check on a room.
type Flag string

const (
	FlagCleaning   Flag = "cleaning"
	FlagEquipment  Flag = "equipment"
	FlagInspection Flag = "inspection"
)

var ErrUnknownFlag = errors.New("unknown room check flag")

func (f Flag) Valid() bool {
	switch f {
	case FlagCleaning, FlagEquipment, FlagInspection:
		return true
	default:
		return false
	}
}

// Flags are the three housekeeping checks. The room status is always derived from them.
type Flags struct {
	Cleaned   bool `json:"cleaned"`
	Equipped  bool `json:"equipped"`
	Inspected bool `json:"inspected"`
}

// Derive maps a flag triple to a room status. Higher stages win regardless of lower flags.
func Derive(f Flags) status.RoomStatus {
	switch {
	case f.Inspected:
		return status.RoomInspected
	case f.Equipped && f.Cleaned:
		return status.RoomSetUp
	case f.Cleaned:
		return status.RoomCleaned
	default:
		return status.RoomCleaning
	}
}

// Toggle flips one flag. Turning a later stage on also turns on the stages before it;
// turning any flag off clears only that flag.
func (f Flags) Toggle(flag Flag) (Flags, error) {
	switch flag {
	case FlagInspection:
		if f.Inspected {
			f.Inspected = false

			return f, nil
		}

		return Flags{Cleaned: true, Equipped: true, Inspected: true}, nil
	case FlagEquipment:
		if f.Equipped {
			f.Equipped = false

			return f, nil
		}

		f.Equipped = true
		f.Cleaned = true

		return f, nil
	case FlagCleaning:
		f.Cleaned = !f.Cleaned

		return f, nil
	default:
		return f, ErrUnknownFlag
	}
}

// Columns returns the update map persisting the flags together with their derived status.
func (f Flags) Columns() map[string]any {
	return map[string]any{
		FieldClearChkYn: status.YN(f.Cleaned),
		FieldBipumChkYn: status.YN(f.Equipped),
		FieldInspChkYn:  status.YN(f.Inspected),
		FieldStatusCd:   string(Derive(f)),
	}
}
