package scheduling

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/models"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

// All dates below are relative to this "today": 2025-02-01 is a Saturday, so
// 2025-02-15 (Sat), 2025-02-16 (Sun) and 2025-02-17 (Mon) are all future.
func newTestLedger() *Ledger {
	clock := fakeClock{now: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)}
	return NewLedger(clock, nil)
}

func TestAvailableTimes_WeekdayExcludesBookedSlots(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)

	available, err := ledger.AvailableTimes("2025-02-17")
	assert.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "15:00", "16:00", "17:00"}, available)
}

func TestAvailableTimes_SaturdayUsesSaturdayCatalog(t *testing.T) {
	ledger := newTestLedger()

	available, err := ledger.AvailableTimes("2025-02-15")
	assert.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, available)
}

func TestAvailableTimes_SundayAlwaysEmpty(t *testing.T) {
	ledger := newTestLedger()
	ledger.Load([]models.Exam{
		{ID: 1, UserEmail: "u1@test.com", Date: "2025-02-16", Time: "08:00", Status: models.ExamStatusConfirmed},
	})

	available, err := ledger.AvailableTimes("2025-02-16")
	assert.NoError(t, err)
	assert.Empty(t, available)
}

func TestAvailableTimes_InvalidDate(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.AvailableTimes("17/02/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// The open slots plus the booked slots must add back up to the full catalog.
func TestAvailableTimes_ComplementOfBookings(t *testing.T) {
	ledger := newTestLedger()

	booked := []string{"08:00", "10:00", "16:00"}
	for _, slot := range booked {
		_, err := ledger.Schedule("u1@test.com", "nr10", "2025-02-18", slot, "")
		assert.NoError(t, err)
	}

	available, err := ledger.AvailableTimes("2025-02-18")
	assert.NoError(t, err)

	seen := make(map[string]bool)
	for _, slot := range available {
		seen[slot] = true
	}
	for _, slot := range booked {
		assert.False(t, seen[slot])
		seen[slot] = true
	}
	assert.Len(t, seen, len(WeekdaySlots()))
}

func TestSchedule_Success(t *testing.T) {
	ledger := newTestLedger()

	exam, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "bring PPE")
	assert.NoError(t, err)
	assert.Equal(t, 1, exam.ID)
	assert.Equal(t, "u1@test.com", exam.UserEmail)
	assert.Equal(t, models.ExamStatusPending, exam.Status)
	assert.Equal(t, "bring PPE", exam.Notes)
	assert.False(t, exam.CreatedAt.IsZero())

	second, err := ledger.Schedule("u2@test.com", "nr10", "2025-02-17", "15:00", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestSchedule_MissingField(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Schedule("u1@test.com", "", "2025-02-17", "14:00", "")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSchedule_PastDateRejected(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Schedule("u1@test.com", "nr35", "2020-01-01", "08:00", "")
	assert.ErrorIs(t, err, ErrPastDate)

	// Same-day bookings are outside the horizon too.
	_, err = ledger.Schedule("u1@test.com", "nr35", "2025-02-01", "08:00", "")
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestSchedule_SundayClosed(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-16", "08:00", "")
	assert.ErrorIs(t, err, ErrClosedSunday)
}

func TestSchedule_SlotNotOffered(t *testing.T) {
	ledger := newTestLedger()

	// 14:00 exists on weekdays but not on Saturdays.
	_, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-15", "14:00", "")
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	_, err = ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "11:00", "")
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestSchedule_ConflictLeavesLedgerUnchanged(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)

	_, err = ledger.Schedule("u2@test.com", "nr10", "2025-02-17", "14:00", "")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, ledger.ListByUser("u2@test.com"))
}

func TestSchedule_CancelledSlotIsReusable(t *testing.T) {
	ledger := newTestLedger()

	exam, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)
	assert.NoError(t, ledger.Cancel(exam.ID, "u1@test.com"))

	available, err := ledger.AvailableTimes("2025-02-17")
	assert.NoError(t, err)
	assert.Contains(t, available, "14:00")

	_, err = ledger.Schedule("u2@test.com", "nr10", "2025-02-17", "14:00", "")
	assert.NoError(t, err)
}

func TestReschedule_Success(t *testing.T) {
	ledger := newTestLedger()
	ledger.Load([]models.Exam{
		{ID: 1, UserEmail: "u1@test.com", Date: "2025-02-17", Time: "14:00", Status: models.ExamStatusConfirmed},
	})

	exam, err := ledger.Reschedule(1, "u1@test.com", "2025-02-18", "09:00")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-18", exam.Date)
	assert.Equal(t, "09:00", exam.Time)
	assert.Equal(t, models.ExamStatusPending, exam.Status)

	// The old slot is free again.
	available, err := ledger.AvailableTimes("2025-02-17")
	assert.NoError(t, err)
	assert.Contains(t, available, "14:00")
}

func TestReschedule_DoesNotConflictWithItself(t *testing.T) {
	ledger := newTestLedger()

	exam, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)

	moved, err := ledger.Reschedule(exam.ID, "u1@test.com", "2025-02-17", "14:00")
	assert.NoError(t, err)
	assert.Equal(t, "14:00", moved.Time)
}

func TestReschedule_ConflictWithOtherBooking(t *testing.T) {
	ledger := newTestLedger()

	first, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)
	_, err = ledger.Schedule("u2@test.com", "nr10", "2025-02-17", "15:00", "")
	assert.NoError(t, err)

	_, err = ledger.Reschedule(first.ID, "u1@test.com", "2025-02-17", "15:00")
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReschedule_NotFound(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Reschedule(99, "u1@test.com", "2025-02-17", "14:00")
	assert.ErrorIs(t, err, ErrExamNotFound)
}

func TestReschedule_ForbiddenForNonOwner(t *testing.T) {
	ledger := newTestLedger()

	exam, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)

	_, err = ledger.Reschedule(exam.ID, "intruder@test.com", "2025-02-18", "09:00")
	assert.ErrorIs(t, err, ErrNotOwner)

	// No mutation happened.
	kept := ledger.ListByUser("u1@test.com")
	assert.Len(t, kept, 1)
	assert.Equal(t, "2025-02-17", kept[0].Date)
	assert.Equal(t, "14:00", kept[0].Time)
}

func TestCancel_IsIdempotent(t *testing.T) {
	ledger := newTestLedger()

	exam, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)

	assert.NoError(t, ledger.Cancel(exam.ID, "u1@test.com"))
	assert.NoError(t, ledger.Cancel(exam.ID, "u1@test.com"))
}

func TestCancel_ForbiddenForNonOwner(t *testing.T) {
	ledger := newTestLedger()

	exam, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-17", "14:00", "")
	assert.NoError(t, err)

	assert.ErrorIs(t, ledger.Cancel(exam.ID, "intruder@test.com"), ErrNotOwner)
	assert.Equal(t, models.ExamStatusPending, ledger.ListByUser("u1@test.com")[0].Status)
}

func TestCancel_NotFound(t *testing.T) {
	ledger := newTestLedger()
	assert.ErrorIs(t, ledger.Cancel(42, "u1@test.com"), ErrExamNotFound)
}

func TestListByUser_SortedByDateThenTime(t *testing.T) {
	ledger := newTestLedger()

	_, err := ledger.Schedule("u1@test.com", "nr35", "2025-02-18", "09:00", "")
	assert.NoError(t, err)
	_, err = ledger.Schedule("u1@test.com", "nr10", "2025-02-17", "15:00", "")
	assert.NoError(t, err)
	_, err = ledger.Schedule("u1@test.com", "nr18", "2025-02-17", "08:00", "")
	assert.NoError(t, err)
	_, err = ledger.Schedule("other@test.com", "cipa", "2025-02-17", "09:00", "")
	assert.NoError(t, err)

	exams := ledger.ListByUser("u1@test.com")
	assert.Len(t, exams, 3)
	assert.Equal(t, "08:00", exams[0].Time)
	assert.Equal(t, "15:00", exams[1].Time)
	assert.Equal(t, "2025-02-18", exams[2].Date)

	again := ledger.ListByUser("u1@test.com")
	assert.Equal(t, exams, again)
}

func TestSchedule_NoDoubleBookingUnderConcurrency(t *testing.T) {
	ledger := newTestLedger()

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := ledger.Schedule(fmt.Sprintf("u%d@test.com", n), "nr35", "2025-02-17", "14:00", "")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
}
