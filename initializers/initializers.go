package initializers

import (
	"context"
	"recruitment-dashboard/config"
	"recruitment-dashboard/fiberlog"
	"recruitment-dashboard/lib/admin/formconfig"
	"recruitment-dashboard/lib/admin/users"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard"
	"recruitment-dashboard/lib/dashboard/fetcher"
	refreshworker "recruitment-dashboard/lib/dashboard/refresh-worker"
	"recruitment-dashboard/lib/details"
	xlsexport "recruitment-dashboard/lib/export/xls"
	"recruitment-dashboard/lib/resume"
	"recruitment-dashboard/lib/status"
	"time"
)

var LoggerConfig *fiberlog.Config

// State состояние дашборда, общее для контроллеров
var State *dashboard.State

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	backend.NewProvider(
		config.Conf.Backend.BaseURL,
		time.Duration(config.Conf.Backend.TimeoutSec)*time.Second,
		config.Conf.Backend.SessionCookie,
	)
	State = dashboard.NewState()
	resume.NewHandler(InitS3(ctx), time.Duration(config.Conf.S3.PresignTTLMin)*time.Minute)
	fetcher.NewHandler(State)
	status.NewHandler(State)
	users.NewHandler()
	formconfig.NewHandler(State)
	details.NewHandler(resume.Linker())
	xlsexport.NewHandler()
	refreshworker.StartWorker(ctx, time.Duration(config.Conf.Dashboard.RefreshIntervalMin)*time.Minute)
}
