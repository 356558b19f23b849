package scheduling

import (
	"sort"
	"sync"
	"time"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/models"
)

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Ledger owns every exam booking. All reads and writes go through its
// methods; ids are allocated under the same lock as the insert so a
// concurrent schedule cannot double-book a slot or reuse an id.
type Ledger struct {
	mu         sync.RWMutex
	exams      []*models.Exam
	byID       map[int]*models.Exam
	nextID     int
	clock      Clock
	courseName func(courseID string) string
}

// NewLedger builds an empty ledger. courseName resolves a course id to its
// display title and may be nil, in which case the raw id is used.
func NewLedger(clock Clock, courseName func(string) string) *Ledger {
	if clock == nil {
		clock = realClock{}
	}
	if courseName == nil {
		courseName = func(id string) string { return id }
	}
	return &Ledger{
		byID:       make(map[int]*models.Exam),
		nextID:     1,
		clock:      clock,
		courseName: courseName,
	}
}

// Load inserts pre-existing records, advancing the id counter past them.
// Used at startup to seed the demo fixture.
func (l *Ledger) Load(exams []models.Exam) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range exams {
		exam := exams[i]
		l.exams = append(l.exams, &exam)
		l.byID[exam.ID] = &exam
		if exam.ID >= l.nextID {
			l.nextID = exam.ID + 1
		}
	}
}

// AvailableTimes returns the open slots on a date: the day's catalog minus
// the times of non-cancelled bookings. Sundays yield an empty list, which is
// a valid "closed" result rather than an error.
func (l *Ledger) AvailableTimes(date string) ([]string, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	catalog := SlotsFor(day)
	if len(catalog) == 0 {
		return []string{}, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	available := make([]string, 0, len(catalog))
	for _, slot := range catalog {
		if !l.slotTakenLocked(date, slot, 0) {
			available = append(available, slot)
		}
	}
	return available, nil
}

// Schedule validates and appends a new booking. Checks run in a fixed order
// and the first failure wins; nothing is written on failure.
func (l *Ledger) Schedule(userEmail, courseID, date, timeSlot, notes string) (models.Exam, error) {
	if userEmail == "" || courseID == "" || date == "" || timeSlot == "" {
		return models.Exam{}, ErrMissingField
	}

	day, err := parseDate(date)
	if err != nil {
		return models.Exam{}, err
	}
	if err := l.checkBookable(day, timeSlot); err != nil {
		return models.Exam{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.slotTakenLocked(date, timeSlot, 0) {
		return models.Exam{}, ErrSlotTaken
	}

	exam := &models.Exam{
		ID:         l.nextID,
		UserEmail:  userEmail,
		CourseID:   courseID,
		CourseName: l.courseName(courseID),
		Date:       date,
		Time:       timeSlot,
		Status:     models.ExamStatusPending,
		Notes:      notes,
		CreatedAt:  l.clock.Now(),
	}
	l.nextID++
	l.exams = append(l.exams, exam)
	l.byID[exam.ID] = exam

	return *exam, nil
}

// Reschedule moves an existing booking to a new date and time. The conflict
// check skips the booking itself so it can keep its current slot. Any prior
// confirmation is invalidated: status goes back to pending.
func (l *Ledger) Reschedule(id int, userEmail, newDate, newTime string) (models.Exam, error) {
	if newDate == "" || newTime == "" {
		return models.Exam{}, ErrMissingField
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	exam, ok := l.byID[id]
	if !ok {
		return models.Exam{}, ErrExamNotFound
	}
	if exam.UserEmail != userEmail {
		return models.Exam{}, ErrNotOwner
	}

	day, err := parseDate(newDate)
	if err != nil {
		return models.Exam{}, err
	}
	if err := l.checkBookable(day, newTime); err != nil {
		return models.Exam{}, err
	}
	if l.slotTakenLocked(newDate, newTime, id) {
		return models.Exam{}, ErrSlotTaken
	}

	exam.Date = newDate
	exam.Time = newTime
	exam.Status = models.ExamStatusPending

	return *exam, nil
}

// Cancel soft-deletes a booking. Cancelling an already-cancelled booking
// succeeds silently.
func (l *Ledger) Cancel(id int, userEmail string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	exam, ok := l.byID[id]
	if !ok {
		return ErrExamNotFound
	}
	if exam.UserEmail != userEmail {
		return ErrNotOwner
	}

	exam.Status = models.ExamStatusCancelled
	return nil
}

// ListByUser returns the user's bookings sorted ascending by date then time.
// ISO dates and zero-padded hour labels both sort correctly as strings.
func (l *Ledger) ListByUser(userEmail string) []models.Exam {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Exam, 0)
	for _, exam := range l.exams {
		if exam.UserEmail == userEmail {
			out = append(out, *exam)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// checkBookable enforces the booking horizon and the day's slot catalog.
func (l *Ledger) checkBookable(day time.Time, timeSlot string) error {
	now := l.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !day.After(today) {
		return ErrPastDate
	}
	if day.Weekday() == time.Sunday {
		return ErrClosedSunday
	}
	if !slotOffered(day, timeSlot) {
		return ErrSlotNotOffered
	}
	return nil
}

// slotTakenLocked reports whether a non-cancelled booking other than
// excludeID already occupies (date, slot). Caller must hold at least a read
// lock.
func (l *Ledger) slotTakenLocked(date, slot string, excludeID int) bool {
	for _, exam := range l.exams {
		if exam.ID == excludeID || exam.Status == models.ExamStatusCancelled {
			continue
		}
		if exam.Date == date && exam.Time == slot {
			return true
		}
	}
	return false
}
