package usersapimodels

import (
	"recruitment-dashboard/models"
	"strings"

	"github.com/pkg/errors"
)

type User struct {
	ID    int             `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// CanDelete администратора удалить нельзя
func (u User) CanDelete() bool {
	return !u.Role.IsAdmin()
}

type CreateRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return errors.New("Email and password are required.")
	}
	return nil
}

type DeleteRequest struct {
	ID int `json:"id" form:"id"`
}

func (r DeleteRequest) Validate() error {
	if r.ID == 0 {
		return errors.New("User ID is required.")
	}
	return nil
}
