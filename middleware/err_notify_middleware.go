package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// ErrNotify отправляет на addr уведомление о каждом ответе 5xx
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if err == nil && statusCode < http.StatusInternalServerError {
			return nil
		}
		if fiberErr, ok := err.(*fiber.Error); ok && fiberErr.Code < http.StatusInternalServerError {
			return err
		}
		notification := errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      c.OriginalURL(),
			RequestID: c.GetRespHeader(HeaderRequestID),
		}
		if r := c.Route(); r != nil {
			notification.Path = r.Path
		}
		if err != nil {
			notification.Code = http.StatusInternalServerError
			notification.Error = err.Error()
		} else {
			var data struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(c.Response().Body(), &data) == nil && data.Message != "" {
				notification.Error = data.Message
			} else {
				notification.Error = string(c.Response().Body())
			}
		}
		payload, marshalErr := json.Marshal(notification)
		if marshalErr != nil {
			log.WithError(marshalErr).Warn("ошибка сериализации уведомления об ошибке")
			return err
		}
		go func() {
			resp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(string(payload)))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
