package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Email            string   `json:"email"`
	PasswordHash     string   `json:"-"`
	Name             string   `json:"name"`
	Team             string   `json:"team"`
	Level            int      `json:"level"`
	Points           int      `json:"points"`
	CompletedCourses []string `json:"completed_courses"`
	Badges           []string `json:"badges"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
