package scheduling

import "errors"

var (
	ErrMissingField   = errors.New("required field is missing")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDate       = errors.New("date must be in the future")
	ErrClosedSunday   = errors.New("closed on Sundays")
	ErrSlotNotOffered = errors.New("time slot is not offered on this day")
	ErrSlotTaken      = errors.New("time slot is already booked")
	ErrExamNotFound   = errors.New("exam not found")
	ErrNotOwner       = errors.New("exam belongs to another user")
)
