package services

import (
	"errors"
	"time"

	"github.com/MehmoodAhmad21/Trackme/config"
	"github.com/MehmoodAhmad21/Trackme/models"
	"github.com/MehmoodAhmad21/Trackme/utils"

	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	// Every account starts with the default goals.
	goal := models.DefaultGoal(user.ID)
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("incorrect email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// StartPasswordReset stores a short-lived reset code on the user and mails
// it. Callers should respond identically whether or not the email exists.
func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	result := config.DB.Where("reset_token = ?", token).First(&user)
	if result.Error != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
