package handlers

import (
	"errors"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/store"
	"github.com/Ojuara-e/asteca-seguranca1.0/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user against the seeded store and issues a JWT.
func Login(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Email and password are required"})
			return
		}

		user, err := users.Authenticate(input.Email, input.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": "Incorrect email or password"})
			return
		}

		token, err := utils.GenerateToken(user.Email)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"token":   token,
			"user":    user,
			"message": "Login successful",
		})
	}
}

type VerifyTokenInput struct {
	Token string `json:"token" binding:"required"`
}

// VerifyToken checks a JWT and returns the user it resolves to.
func VerifyToken(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyTokenInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Token is required"})
			return
		}

		email, err := utils.ValidateToken(input.Token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(401, gin.H{"error": "Token expired"})
			} else {
				c.JSON(401, gin.H{"error": "Invalid token"})
			}
			return
		}

		user, ok := users.Get(email)
		if !ok {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"valid": true,
			"user":  user,
		})
	}
}

// Logout is stateless: the client discards its token.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "message": "Logout successful"})
	}
}

// GetProfile returns the authenticated user's account data.
func GetProfile(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")

		user, ok := users.Get(email)
		if !ok {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"user":    user,
		})
	}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// Register is a demo stub: it never creates an account, it points the
// applicant at the training center instead.
func Register(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": "Email, password and name are required"})
			return
		}

		if users.Exists(input.Email) {
			c.JSON(409, gin.H{"error": "Email already registered"})
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"message": "To register, contact Vanessa on WhatsApp: (47) 99695-0869",
		})
	}
}
