package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/scheduling"
	"github.com/gin-gonic/gin"
)

var businessHoursSummary = gin.H{
	"weekdays": "Segunda a Sexta: 8h às 18h",
	"saturday": "Sábado: 8h às 12h",
	"sunday":   "Domingo: Fechado",
}

// schedulingStatus maps a ledger error to its HTTP status code.
func schedulingStatus(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrExamNotFound):
		return 404
	case errors.Is(err, scheduling.ErrNotOwner):
		return 403
	case errors.Is(err, scheduling.ErrSlotTaken):
		return 409
	default:
		return 400
	}
}

// GetAvailableTimes returns the open slots for a date. Sundays answer with an
// empty list and a closed notice rather than an error.
func GetAvailableTimes(ledger *scheduling.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		dateParam := c.Query("date")
		if dateParam == "" {
			c.JSON(400, gin.H{"error": "date query parameter is required (format: YYYY-MM-DD)"})
			return
		}

		available, err := ledger.AvailableTimes(dateParam)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		day, _ := time.Parse("2006-01-02", dateParam)
		if day.Weekday() == time.Sunday {
			c.JSON(200, gin.H{
				"success":         true,
				"available_times": []string{},
				"message":         "Closed on Sundays",
			})
			return
		}

		c.JSON(200, gin.H{
			"success":         true,
			"date":            dateParam,
			"available_times": available,
			"business_hours":  businessHoursSummary,
		})
	}
}

type ScheduleExamInput struct {
	CourseID string `json:"course_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Notes    string `json:"notes"`
}

// ScheduleExam books a practical exam slot for the authenticated user.
func ScheduleExam(ledger *scheduling.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.GetString("userEmail")

		var input ScheduleExamInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "course_id, date and time are required"})
			return
		}

		exam, err := ledger.Schedule(userEmail, input.CourseID, input.Date, input.Time, input.Notes)
		if err != nil {
			c.JSON(schedulingStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(201, gin.H{
			"success": true,
			"message": "Exam scheduled successfully! You will receive a confirmation on WhatsApp.",
			"exam":    exam,
			"whatsapp_message": fmt.Sprintf(
				"Hello! Your %s exam is scheduled for %s at %s. We will confirm shortly!",
				exam.CourseName, exam.Date, exam.Time,
			),
		})
	}
}

// GetMyExams lists the authenticated user's bookings sorted by date and time.
func GetMyExams(ledger *scheduling.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.GetString("userEmail")

		c.JSON(200, gin.H{
			"success": true,
			"exams":   ledger.ListByUser(userEmail),
		})
	}
}

type RescheduleExamInput struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// RescheduleExam moves a booking to a new slot, resetting it to pending.
func RescheduleExam(ledger *scheduling.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.GetString("userEmail")

		examID, err := strconv.Atoi(c.Param("examId"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid exam id"})
			return
		}

		var input RescheduleExamInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "date and time are required"})
			return
		}

		exam, err := ledger.Reschedule(examID, userEmail, input.Date, input.Time)
		if err != nil {
			c.JSON(schedulingStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"message": "Exam rescheduled successfully!",
			"exam":    exam,
		})
	}
}

// CancelExam soft-cancels a booking, freeing its slot.
func CancelExam(ledger *scheduling.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.GetString("userEmail")

		examID, err := strconv.Atoi(c.Param("examId"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid exam id"})
			return
		}

		if err := ledger.Cancel(examID, userEmail); err != nil {
			c.JSON(schedulingStatus(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"message": "Exam cancelled successfully!",
		})
	}
}

// GetBusinessHours returns the static opening schedule and contact details.
func GetBusinessHours() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"business_hours": gin.H{
				"weekdays": gin.H{
					"days":            "Segunda a Sexta",
					"hours":           "8h às 18h",
					"available_times": scheduling.WeekdaySlots(),
				},
				"saturday": gin.H{
					"days":            "Sábado",
					"hours":           "8h às 12h",
					"available_times": scheduling.SaturdaySlots(),
				},
				"sunday": gin.H{
					"days":            "Domingo",
					"hours":           "Fechado",
					"available_times": []string{},
				},
			},
			"contact": gin.H{
				"whatsapp": "(47) 99695-0869",
				"email":    "vanessa.asteca@gmail.com",
				"address":  "Rua Carlos Eggert, 433, Vila Lalau, Jaraguá do Sul/SC",
			},
		})
	}
}
