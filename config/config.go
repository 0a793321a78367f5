package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8090"  env:"APP_PORT"`
		LogLevel      string `default:"info" env:"APP_LOG_LEVEL"`
		BodyLimitKB   int64  `default:"1024" env:"APP_BODY_LIMIT_KB"`
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Backend struct {
		BaseURL       string `default:"http://127.0.0.1:5000" env:"BACKEND_URL"`
		TimeoutSec    int    `default:"30" env:"BACKEND_TIMEOUT_SEC"`
		SessionCookie string `default:"" env:"BACKEND_SESSION_COOKIE"`
	}
	S3 struct {
		Enabled         *bool  `default:"false" env:"S3_ENABLED"`
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		Region          string `default:"us-east-1" env:"S3_REGION"`
		BucketName      string `default:"resumes" env:"S3_BUCKET_NAME"`
		PresignTTLMin   int    `default:"15" env:"S3_PRESIGN_TTL_MIN"`
	}
	Dashboard struct {
		RefreshIntervalMin int `default:"0" env:"DASHBOARD_REFRESH_INTERVAL_MIN"`
	}
	Charts struct {
		Width      int   `default:"640" env:"CHART_WIDTH"`
		Height     int   `default:"400" env:"CHART_HEIGHT"`
		MaxRenders int64 `default:"4" env:"CHART_MAX_RENDERS"`
	}
	Print struct {
		DelayMs int `default:"250" env:"PRINT_DELAY_MS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// переменные из .env не перекрывают уже заданные в окружении
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(err)
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
