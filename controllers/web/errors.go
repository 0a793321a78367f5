package web

import (
	"recruitment-dashboard/lib/table"
	"recruitment-dashboard/models"

	"github.com/pkg/errors"
)

const (
	ErrNoData            = models.UserError("No data available to download.")
	ErrCandidateNotFound = models.UserError("Candidate not found.")
)

func noData(err error) error {
	if errors.Is(err, table.ErrNoData) {
		return ErrNoData
	}
	return err
}
