package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"recruitment-dashboard/lib/backend"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID(), BackendSession())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": backend.RequestIDFrom(c.UserContext())})
	})

	t.Run(`generated`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.Nil(t, err)
		id := resp.Header.Get(HeaderRequestID)
		require.Len(t, id, 36)
		body := map[string]string{}
		require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, id, body["request_id"])
	})

	t.Run(`taken from header`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc")
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, "abc", resp.Header.Get(HeaderRequestID))
	})
}

func TestBackendSession(t *testing.T) {
	var gotCookie, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotRequestID = r.Header.Get(HeaderRequestID)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()
	client := backend.NewClient(server.URL, nil, "session=fallback")

	app := fiber.New()
	app.Use(RequestID(), BackendSession())
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := client.GetFields(c.UserContext())
		return err
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("Cookie", "session=user")
	req.Header.Set(HeaderRequestID, "req-9")
	resp, err := app.Test(req)
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "session=user", gotCookie)
	require.Equal(t, "req-9", gotRequestID)
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("0123456789abc")))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("short")))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestErrNotify(t *testing.T) {
	got := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		got <- string(data)
	}))
	defer server.Close()

	app := fiber.New()
	app.Use(ErrNotify(server.URL))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "backend down"})
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
	require.Nil(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
	require.Nil(t, err)

	select {
	case payload := <-got:
		require.JSONEq(t, `{"code":502,"method":"GET","path":"/fail","error":"backend down"}`, payload)
	case <-time.After(3 * time.Second):
		t.Fatal("уведомление не отправлено")
	}
}
