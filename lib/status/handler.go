package status

import (
	"context"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard"
	initchecker "recruitment-dashboard/lib/utils/init-checker"
	"recruitment-dashboard/models"
	statusapimodels "recruitment-dashboard/models/api/status"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	FeedbackSaved = "Saved!"
	FeedbackError = "Error!"
)

type Provider interface {
	// Candidates уникальные по email кандидаты текущей таблицы
	Candidates() []statusapimodels.Candidate
	UpdateStatus(ctx context.Context, request statusapimodels.UpdateRequest) error
}

var Instance Provider

func NewHandler(state *dashboard.State) {
	Instance = NewInstance(state, backend.Instance)
}

func NewInstance(state *dashboard.State, client backend.Provider) Provider {
	instance := impl{
		state:  state,
		client: client,
	}
	initchecker.CheckInit(
		"state", instance.state,
		"client", instance.client,
	)
	return instance
}

type impl struct {
	state  *dashboard.State
	client backend.Provider
}

func (i impl) Candidates() []statusapimodels.Candidate {
	return UniqueCandidates(i.state.Rows())
}

func (i impl) UpdateStatus(ctx context.Context, request statusapimodels.UpdateRequest) error {
	if err := request.Validate(); err != nil {
		return models.UserError(err.Error())
	}
	logger := log.
		WithField("email", request.Email).
		WithField("status", request.Status)
	_, err := i.client.UpdateStatus(ctx, request)
	if err != nil {
		logger.WithError(err).Error("ошибка изменения статуса кандидата")
		return errors.Wrap(err, "ошибка изменения статуса кандидата")
	}
	logger.Info("статус кандидата изменен")
	return nil
}

// UniqueCandidates первая строка с данным email (без учета регистра), строки без email пропускаются
func UniqueCandidates(rows []*models.CandidateRecord) []statusapimodels.Candidate {
	seen := map[string]bool{}
	result := []statusapimodels.Candidate{}
	for _, row := range rows {
		email := strings.TrimSpace(row.Text(models.KeyEmail))
		if email == "" {
			continue
		}
		key := strings.ToLower(email)
		if seen[key] {
			continue
		}
		seen[key] = true
		name := row.Text(models.KeyName)
		if name == "" {
			name = "N/A"
		}
		result = append(result, statusapimodels.Candidate{
			Email:  email,
			Name:   name,
			Status: models.CandidateStatus(row.Text(models.KeyStatus)),
		})
	}
	return result
}
