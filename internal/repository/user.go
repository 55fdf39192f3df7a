package repository

import (
	"context"
	"errors"

	"github.com/AarazooSingh1506/autism-detction-system/internal/database"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrUsernameTaken is returned when registration collides with an
// existing account.
var ErrUsernameTaken = errors.New("username already exists")

func CreateUser(ctx context.Context, username, password, role string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := database.DB.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrUsernameTaken
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	result := database.DB.WithContext(ctx).Create(user)
	return user, result.Error
}

func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, "username = ?", username)
	return &user, result.Error
}

func GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	result := database.DB.WithContext(ctx).First(&user, id)
	return &user, result.Error
}

func ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	result := database.DB.WithContext(ctx).Order("created_at").Find(&users)
	return users, result.Error
}

func CountUsers(ctx context.Context) (int64, error) {
	var count int64
	result := database.DB.WithContext(ctx).Model(&models.User{}).Count(&count)
	return count, result.Error
}

// EnsureAdmin creates the admin account if it does not exist yet.
// Idempotent; called once at startup.
func EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err = CreateUser(ctx, username, password, models.RoleAdmin)
	return err
}
