package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// BaseImpl периодическая задача: первый запуск через firstRunDelay, далее каждые runInterval
type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run выполняет jobFunc до завершения ctx. Ошибка или паника одного запуска не останавливает задачу.
func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context) error) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-timer.C:
			if err := i.runOnce(ctx, jobFunc); err != nil {
				logger.WithError(err).Error("Задача завершилась с ошибкой")
			} else {
				logger.Debug("Задача выполнена")
			}
			timer.Reset(i.runInterval)
		}
	}
}

func (i BaseImpl) runOnce(ctx context.Context, jobFunc func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return jobFunc(ctx)
}
