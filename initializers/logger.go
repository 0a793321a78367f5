package initializers

import (
	"recruitment-dashboard/fiberlog"

	log "github.com/sirupsen/logrus"
)

func InitLogger(level string) *fiberlog.Config {
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetFormatter(formatter)
	log.SetLevel(lvl)
	if err != nil {
		log.WithError(err).WithField("level", level).Warn("некорректный уровень логирования, используется info")
	}

	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.RequestID,
		},
	}
}
