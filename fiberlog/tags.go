package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagURL     = "url"
	TagIP      = "ip"
	TagUA      = "user_agent"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

// RequestIDLocal ключ c.Locals, под которым middleware кладет id запроса
const RequestIDLocal = "requestid"

// maxBodyLen тело запроса и ответа в логе обрезается
const maxBodyLen = 2048

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag значение поля лога для тега
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return cut(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if !isTextResponse(c) {
				return ""
			}
			return cut(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			id, _ := c.Locals(RequestIDLocal).(string)
			return id
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func cut(body []byte) string {
	if len(body) > maxBodyLen {
		return string(body[:maxBodyLen]) + "..."
	}
	return string(body)
}

// isTextResponse png, xlsx и pdf в лог не пишем
func isTextResponse(c *fiber.Ctx) bool {
	contentType := string(c.Response().Header.ContentType())
	for _, prefix := range []string{fiber.MIMEApplicationJSON, fiber.MIMETextPlain, "text/csv"} {
		if len(contentType) >= len(prefix) && contentType[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
