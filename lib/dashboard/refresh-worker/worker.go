package refreshworker

import (
	"context"
	"recruitment-dashboard/lib/dashboard/fetcher"
	baseworker "recruitment-dashboard/lib/utils/base-worker"
	"time"

	"github.com/pkg/errors"
)

// StartWorker периодически перезагружает дашборд с текущими фильтрами. Нулевой интервал отключает задачу.
func StartWorker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("DashboardRefreshWorker", interval, interval),
		fetcher:  fetcher.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	fetcher fetcher.Provider
}

func (i impl) handle(ctx context.Context) error {
	err := i.fetcher.Reload(ctx)
	if errors.Is(err, fetcher.ErrStaleResponse) {
		return nil
	}
	return err
}
