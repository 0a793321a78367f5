package controllers

import (
	"net/url"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/models"
	apimodels "recruitment-dashboard/models/api"
	"recruitment-dashboard/views"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	QueryNotice = "notice"
	QueryError  = "error"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return models.UserError("Invalid request data.")
	}
	return nil
}

func (c *BaseAPIController) GetIntParam(ctx *fiber.Ctx, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Params(name))
	if err != nil {
		return 0, models.UserError("Invalid " + name + ".")
	}
	return value, nil
}

func (c *BaseAPIController) Flash(ctx *fiber.Ctx) views.Flash {
	return views.Flash{
		Notice: ctx.Query(QueryNotice),
		Error:  ctx.Query(QueryError),
	}
}

func (c *BaseAPIController) Render(ctx *fiber.Ctx, page string, data interface{}) error {
	ctx.Type("html", "utf-8")
	return views.Render(ctx, page, data)
}

// Respond браузеру отвечает редиректом на back с текстом уведомления, JSON клиенту ответом apimodels.Response
func (c *BaseAPIController) Respond(ctx *fiber.Ctx, back, message string, err error) error {
	if err != nil {
		text := backend.UserMessage(err)
		if WantsJSON(ctx) {
			return ctx.Status(StatusFor(err)).JSON(apimodels.NewError(text))
		}
		return ctx.Redirect(withQuery(back, QueryError, text), fiber.StatusSeeOther)
	}
	if WantsJSON(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(message))
	}
	return ctx.Redirect(withQuery(back, QueryNotice, message), fiber.StatusSeeOther)
}

func WantsJSON(ctx *fiber.Ctx) bool {
	return strings.Contains(ctx.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) ||
		strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

// StatusFor ошибка клиента 400, ответ backend 4xx как есть, остальное 502/500
func StatusFor(err error) int {
	var userErr models.UserError
	if errors.As(err, &userErr) {
		return fiber.StatusBadRequest
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return fiber.StatusBadGateway
	}
	var transportErr *backend.TransportError
	if errors.As(err, &transportErr) {
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func withQuery(back, key, value string) string {
	if value == "" {
		return back
	}
	sep := "?"
	if strings.Contains(back, "?") {
		sep = "&"
	}
	return back + sep + key + "=" + url.QueryEscape(value)
}
