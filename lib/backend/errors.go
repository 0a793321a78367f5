package backend

import (
	"fmt"
	"recruitment-dashboard/models"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const GenericErrorText = "An unknown error occurred on the server."

// APIError backend ответил статусом вне 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend вернул статус %d: %s", e.StatusCode, e.Message)
}

// TransportError запрос не дошел до backend или ответ не прочитан
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "ошибка соединения с backend: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError успешный ответ backend не удалось разобрать
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "ошибка сериализации ответа: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MessageOf текст ошибки для пользователя: сообщение backend, иначе общий текст
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericErrorText
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// parseErrorMessage текст ошибки из тела ответа: message, затем error
func parseErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		if value := gjson.GetBytes(body, key); value.Type == gjson.String && value.Str != "" {
			return value.Str
		}
	}
	return ""
}

// UserMessage текст для пользователя: ошибка проверки ввода как есть, иначе MessageOf
func UserMessage(err error) string {
	var userErr models.UserError
	if errors.As(err, &userErr) {
		return string(userErr)
	}
	return MessageOf(err)
}
