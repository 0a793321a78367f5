package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func TestNew(t *testing.T) {
	t.Run(`logs configured tags`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(RequestIDLocal, "req-1")
			return c.Next()
		})
		app.Use(New(Config{
			Logger: newLogger(buf),
			Tags:   []string{TagMethod, TagPath, TagStatus, TagResBody, RequestID, TagLatency},
		}))
		app.Get("/api/state", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"loading": false})
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/state", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "GET", entry[TagMethod])
		require.Equal(t, "/api/state", entry[TagPath])
		require.Equal(t, float64(200), entry[TagStatus])
		require.Equal(t, `{"loading":false}`, entry[TagResBody])
		require.Equal(t, "req-1", entry[RequestID])
		require.Equal(t, "info", entry["level"])
		require.NotEmpty(t, entry[TagLatency])
	})

	t.Run(`binary body skipped and client errors warned`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{Logger: newLogger(buf), Tags: []string{TagResBody, TagStatus}}))
		app.Get("/charts/x.png", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, "image/png")
			return c.Status(fiber.StatusNotFound).Send([]byte{0x89, 'P', 'N', 'G'})
		})

		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/charts/x.png", nil))
		require.Nil(t, err)
		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		_, has := entry[TagResBody]
		require.False(t, has)
		require.Equal(t, "warning", entry["level"])
	})

	t.Run(`body is truncated`, func(t *testing.T) {
		require.True(t, strings.HasSuffix(cut(bytes.Repeat([]byte("a"), maxBodyLen+10)), "..."))
		require.Equal(t, "abc", cut([]byte("abc")))
	})
}
