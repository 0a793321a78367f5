package refreshworker

import (
	"context"
	"recruitment-dashboard/lib/dashboard/fetcher"
	baseworker "recruitment-dashboard/lib/utils/base-worker"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fetcherMock struct {
	mock.Mock
}

func (m *fetcherMock) LoadDashboard(ctx context.Context, filters dashboardapimodels.Filters) error {
	return m.Called(filters).Error(0)
}

func (m *fetcherMock) Reload(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *fetcherMock) ResetFilters(ctx context.Context) error {
	return m.Called().Error(0)
}

func TestHandle(t *testing.T) {
	t.Run("stale response ignored", func(t *testing.T) {
		m := new(fetcherMock)
		m.On("Reload").Return(fetcher.ErrStaleResponse).Once()
		i := impl{BaseImpl: *baseworker.NewInstance("test", time.Hour, time.Hour), fetcher: m}
		require.Nil(t, i.handle(context.TODO()))
		m.AssertExpectations(t)
	})
	t.Run("backend error returned", func(t *testing.T) {
		m := new(fetcherMock)
		m.On("Reload").Return(errors.New("backend down")).Once()
		i := impl{BaseImpl: *baseworker.NewInstance("test", time.Hour, time.Hour), fetcher: m}
		require.EqualError(t, i.handle(context.TODO()), "backend down")
		m.AssertNotCalled(t, "ResetFilters")
		m.AssertExpectations(t)
	})
}
