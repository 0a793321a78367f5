package statusapimodels

import (
	"recruitment-dashboard/models"
	"strings"

	"github.com/pkg/errors"
)

type UpdateRequest struct {
	Email  string                 `json:"email" form:"email"`
	Name   string                 `json:"name" form:"name"`
	Status models.CandidateStatus `json:"status" form:"status"`
}

func (r UpdateRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Status == "" {
		return errors.New("Email and status are required.")
	}
	if !r.Status.IsValid() {
		return errors.Errorf("Unknown status %q.", r.Status)
	}
	return nil
}

// Candidate строка редактора статусов
type Candidate struct {
	Email  string                 `json:"email"`
	Name   string                 `json:"name"`
	Status models.CandidateStatus `json:"status"`
}
