package handlers

import (
	"github.com/Ojuara-e/asteca-seguranca1.0/internal/models"
	"github.com/Ojuara-e/asteca-seguranca1.0/internal/store"
	"github.com/gin-gonic/gin"
)

// GetTeamRanking returns the team leaderboard.
func GetTeamRanking(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"ranking": catalog.TeamRanking(),
		})
	}
}

// GetIndividualRanking returns the individual leaderboard.
func GetIndividualRanking(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"ranking": catalog.IndividualRanking(),
		})
	}
}

// GetBadges lists every badge that can be earned.
func GetBadges(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"badges":  catalog.Badges(),
		})
	}
}

// GetUserBadges splits the badge catalog into earned and still-available for
// the logged-in user.
func GetUserBadges(users *store.UserStore, catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")

		user, ok := users.Get(email)
		if !ok {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		earned := make(map[string]bool, len(user.Badges))
		userBadges := make([]models.Badge, 0, len(user.Badges))
		for _, id := range user.Badges {
			if badge, ok := catalog.Badge(id); ok {
				earned[id] = true
				userBadges = append(userBadges, badge)
			}
		}

		available := make([]models.Badge, 0)
		for _, badge := range catalog.Badges() {
			if !earned[badge.ID] {
				available = append(available, badge)
			}
		}

		c.JSON(200, gin.H{
			"success":          true,
			"user_badges":      userBadges,
			"available_badges": available,
		})
	}
}
