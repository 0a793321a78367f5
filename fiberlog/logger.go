package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		// data на каждый запрос, обработчики fiber работают конкурентно
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		fields := getLogrusFields(ftm, c, d)
		if err != nil {
			fields[log.ErrorKey] = err.Error()
		}
		var entry *log.Entry
		if cfg.Logger == nil {
			entry = log.WithFields(fields)
		} else {
			entry = cfg.Logger.WithFields(fields)
		}
		status := c.Response().StatusCode()
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			entry.Error(getMessage(c))
		case status >= fiber.StatusBadRequest:
			entry.Warn(getMessage(c))
		default:
			entry.Info(getMessage(c))
		}
		return err
	}
}

func getMessage(c *fiber.Ctx) string {
	return "запрос " + c.Method() + " " + c.Path()
}
