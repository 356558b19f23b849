package handlers

import (
	"fmt"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/store"
	"github.com/gin-gonic/gin"
)

// GetCourses lists the full course catalog.
func GetCourses(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"courses": catalog.Courses(),
		})
	}
}

// GetCourseDetails returns a single course.
func GetCourseDetails(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		course, ok := catalog.Course(c.Param("courseId"))
		if !ok {
			c.JSON(404, gin.H{"error": "Course not found"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"course":  course,
		})
	}
}

// GetUserProgress returns the demo progress fixture for the logged-in user.
func GetUserProgress() gin.HandlerFunc {
	return func(c *gin.Context) {
		progress := gin.H{
			"completed_courses": []string{"nr35"},
			"in_progress_courses": []gin.H{
				{
					"course_id":      "nr10",
					"progress":       65,
					"current_module": 4,
					"total_modules":  6,
				},
			},
			"available_courses": []string{"nr18", "primeiros-socorros", "cipa", "empilhadeira"},
			"total_points":      250,
			"level":             3,
			"badges":            []string{"safety_expert", "team_player", "perfect_attendance"},
			"team":              "Pintores Pro",
			"team_ranking":      2,
		}

		c.JSON(200, gin.H{
			"success":  true,
			"progress": progress,
		})
	}
}

// EnrollCourse simulates enrolling the user in a course.
func EnrollCourse(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		course, ok := catalog.Course(c.Param("courseId"))
		if !ok {
			c.JSON(404, gin.H{"error": "Course not found"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"message": fmt.Sprintf("Enrollment in %s completed successfully!", course.Title),
			"course":  course,
		})
	}
}

type CompleteModuleInput struct {
	CourseID string `json:"course_id" binding:"required"`
	ModuleID int    `json:"module_id" binding:"required"`
}

// CompleteModule marks a course module as done. Points are a fixed demo stub.
func CompleteModule(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CompleteModuleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "course_id and module_id are required"})
			return
		}

		if _, ok := catalog.Course(input.CourseID); !ok {
			c.JSON(404, gin.H{"error": "Course not found"})
			return
		}

		pointsEarned := 10

		c.JSON(200, gin.H{
			"success":          true,
			"message":          fmt.Sprintf("Module completed! You earned %d points.", pointsEarned),
			"points_earned":    pointsEarned,
			"new_total_points": 260,
		})
	}
}
