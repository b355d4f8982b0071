package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seafresh/fishmarket-api/auth"
	"github.com/seafresh/fishmarket-api/middleware"
	"github.com/seafresh/fishmarket-api/models"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer account and issues a token. Fails when the
// email or username is already taken. The original maps the conflict to
// 400, not 409, and that status is part of the public surface.
func Register(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
			return
		}
		input.Username = strings.TrimSpace(input.Username)
		input.Email = strings.TrimSpace(input.Email)

		user, token, err := registerUser(db, jwtSecret, input)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateUser) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"token":    token,
		})
	}
}

func registerUser(db *gorm.DB, jwtSecret string, input RegisterInput) (models.User, string, error) {
	var existing models.User
	err := db.Where("email = ? OR username = ?", input.Email, input.Username).
		First(&existing).Error
	if err == nil {
		return models.User{}, "", models.ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, "", err
	}

	token, err := auth.IssueToken(jwtSecret, user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and issues a token.
func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", strings.TrimSpace(input.Email)).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if !auth.CheckPassword(user.PasswordHash, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := auth.IssueToken(jwtSecret, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID,
			"name":  user.Username,
			"email": user.Email,
			"role":  user.Role,
			"token": token,
		})
	}
}

// Profile returns the authenticated user, password excluded. Runs behind
// RequireAuth, which already resolved the token to a live user record.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
