package web

import (
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/dashboard/fetcher"
	"recruitment-dashboard/lib/status"
	"recruitment-dashboard/models"
	apimodels "recruitment-dashboard/models/api"
	statusapimodels "recruitment-dashboard/models/api/status"
	"recruitment-dashboard/views"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type statusApiController struct {
	controllers.BaseAPIController
}

func InitStatusRouters(app fiber.Router) {
	controller := statusApiController{}
	app.Route("status", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.update)
		router.Post("close", controller.close)
	})
}

// @Summary Редактор статусов кандидатов
// @Tags Статус
// @Success 200
// @router /status [get]
func (c *statusApiController) list(ctx *fiber.Ctx) error {
	candidates := status.Instance.Candidates()
	if controllers.WantsJSON(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidates))
	}
	return c.Render(ctx, views.PageStatus, views.StatusPage{
		Flash:      c.Flash(ctx),
		Candidates: candidates,
		Statuses:   models.CandidateStatuses,
	})
}

// @Summary Изменить статус кандидата
// @Tags Статус
// @Accept json
// @Param   body	body	statusapimodels.UpdateRequest	true	"email, имя и новый статус"
// @Success 200 {object} apimodels.Response "Saved!"
// @Failure 400 {object} apimodels.Response
// @router /status [post]
func (c *statusApiController) update(ctx *fiber.Ctx) error {
	var payload statusapimodels.UpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, "/status", "", err)
	}
	err := status.Instance.UpdateStatus(ctx.UserContext(), payload)
	return c.Respond(ctx, "/status", status.FeedbackSaved, err)
}

// @Summary Закрыть редактор статусов
// @Tags Статус
// @Description Закрытие редактора перезагружает дашборд
// @Success 303
// @router /status/close [post]
func (c *statusApiController) close(ctx *fiber.Ctx) error {
	if err := fetcher.Instance.Reload(ctx.UserContext()); err != nil && !errors.Is(err, fetcher.ErrStaleResponse) {
		log.WithError(err).Warn("ошибка перезагрузки дашборда после редактора статусов")
	}
	return c.Respond(ctx, "/", "", nil)
}
