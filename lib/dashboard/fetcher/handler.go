package fetcher

import (
	"context"
	"net/url"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard"
	initchecker "recruitment-dashboard/lib/utils/init-checker"
	"recruitment-dashboard/metrics"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const bannerPrefix = "Failed to load dashboard data. "

var ErrStaleResponse = errors.New("ответ устарел")

type Provider interface {
	// LoadDashboard загружает данные дашборда по фильтрам. Ошибка уже отражена в баннере состояния.
	LoadDashboard(ctx context.Context, filters dashboardapimodels.Filters) error
	// Reload повторяет загрузку с текущими фильтрами
	Reload(ctx context.Context) error
	ResetFilters(ctx context.Context) error
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

func (i impl) LoadDashboard(ctx context.Context, filters dashboardapimodels.Filters) error {
	seq := i.state.BeginLoad(filters)
	logger := log.
		WithField("seq", seq).
		WithField("filters", filters)
	if requestID := backend.RequestIDFrom(ctx); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}

	data, err := i.client.GetData(ctx, BuildQuery(filters))
	if err != nil {
		banner := bannerPrefix + backend.MessageOf(err)
		if !i.state.ApplyError(seq, banner) {
			logger.Info("ответ с ошибкой устарел и отброшен")
			metrics.DashboardLoads.WithLabelValues(metrics.ResultStale).Inc()
			return ErrStaleResponse
		}
		metrics.DashboardLoads.WithLabelValues(metrics.ResultError).Inc()
		logger.WithError(err).Error("ошибка загрузки данных дашборда")
		return errors.Wrap(err, "ошибка загрузки данных дашборда")
	}
	if !i.state.ApplyData(seq, data) {
		logger.Info("ответ устарел и отброшен")
		metrics.DashboardLoads.WithLabelValues(metrics.ResultStale).Inc()
		return ErrStaleResponse
	}
	metrics.DashboardLoads.WithLabelValues(metrics.ResultApplied).Inc()
	logger.WithField("rows", len(data.TableData)).Info("данные дашборда обновлены")
	return nil
}

func (i impl) Reload(ctx context.Context) error {
	return i.LoadDashboard(ctx, i.state.Snapshot().Filters)
}

func (i impl) ResetFilters(ctx context.Context) error {
	return i.LoadDashboard(ctx, ResetFilters())
}

// BuildQuery пустые значения и "all" не передаются
func BuildQuery(filters dashboardapimodels.Filters) url.Values {
	query := url.Values{}
	for _, key := range dashboardapimodels.FilterKeys {
		value := strings.TrimSpace(filters[key])
		if value == "" || value == dashboardapimodels.FilterAll {
			continue
		}
		query.Set(key, value)
	}
	return query
}

// ResetFilters все списки в "all", даты пустые
func ResetFilters() dashboardapimodels.Filters {
	filters := dashboardapimodels.Filters{}
	for _, key := range dashboardapimodels.FilterKeys {
		if key == dashboardapimodels.FilterStartDate || key == dashboardapimodels.FilterEndDate {
			filters[key] = ""
			continue
		}
		filters[key] = dashboardapimodels.FilterAll
	}
	return filters
}

// FiltersFromQuery фильтры из строки запроса страницы
func FiltersFromQuery(get func(key string) string) dashboardapimodels.Filters {
	filters := dashboardapimodels.Filters{}
	for _, key := range dashboardapimodels.FilterKeys {
		if value := get(key); value != "" {
			filters[key] = value
		}
	}
	return filters
}
