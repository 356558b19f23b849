package scheduling

import "time"

const dateLayout = "2006-01-02"

// Bookable time-of-day slots, in catalog order. Sundays are closed and have
// no catalog at all.
var (
	weekdaySlots  = []string{"08:00", "09:00", "10:00", "14:00", "15:00", "16:00", "17:00"}
	saturdaySlots = []string{"08:00", "09:00", "10:00", "11:00"}
)

// WeekdaySlots returns the slot catalog for Monday through Friday.
func WeekdaySlots() []string {
	out := make([]string, len(weekdaySlots))
	copy(out, weekdaySlots)
	return out
}

// SaturdaySlots returns the slot catalog for Saturdays.
func SaturdaySlots() []string {
	out := make([]string, len(saturdaySlots))
	copy(out, saturdaySlots)
	return out
}

// SlotsFor classifies a date by weekday and returns the slot catalog that
// applies to it. Sundays yield nil.
func SlotsFor(date time.Time) []string {
	switch date.Weekday() {
	case time.Sunday:
		return nil
	case time.Saturday:
		return SaturdaySlots()
	default:
		return WeekdaySlots()
	}
}

func slotOffered(date time.Time, slot string) bool {
	for _, s := range SlotsFor(date) {
		if s == slot {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
