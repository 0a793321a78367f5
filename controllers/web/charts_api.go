package web

import (
	"bytes"
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/charts"
	"recruitment-dashboard/lib/dashboard"
	"recruitment-dashboard/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

type chartsApiController struct {
	controllers.BaseAPIController
	state   *dashboard.State
	width   int
	height  int
	renders *semaphore.Weighted
}

// InitChartsRouters maxRenders ограничивает число одновременно рисуемых графиков
func InitChartsRouters(app fiber.Router, state *dashboard.State, width, height int, maxRenders int64) {
	if maxRenders <= 0 {
		maxRenders = 1
	}
	controller := chartsApiController{
		state:   state,
		width:   width,
		height:  height,
		renders: semaphore.NewWeighted(maxRenders),
	}
	app.Get("charts/:name.png", controller.render)
}

// @Summary Изображение графика
// @Tags Дашборд
// @Produce image/png
// @Param   name	path	string	true	"appsPerCompanyChart, appsPerCollegeChart, genderDiversityChart, recruitmentFunnelChart"
// @Success 200
// @Success 204 "нет данных"
// @Failure 404
// @router /charts/{name}.png [get]
func (c *chartsApiController) render(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if _, ok := charts.DefinitionByName(name); !ok {
		return ctx.SendStatus(fiber.StatusNotFound)
	}
	instance, ok := c.state.Chart(name)
	if !ok {
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	if err := c.renders.Acquire(ctx.UserContext(), 1); err != nil {
		return ctx.SendStatus(fiber.StatusServiceUnavailable)
	}
	buf := bytes.Buffer{}
	err := charts.Render(&buf, instance, c.width, c.height)
	c.renders.Release(1)
	if errors.Is(err, charts.ErrNoData) {
		metrics.ChartRenders.WithLabelValues(name, metrics.ResultEmpty).Inc()
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	if err != nil {
		metrics.ChartRenders.WithLabelValues(name, metrics.ResultError).Inc()
		log.WithError(err).WithField("chart", name).Error("ошибка построения графика")
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	metrics.ChartRenders.WithLabelValues(name, metrics.ResultOK).Inc()
	ctx.Set(fiber.HeaderContentType, "image/png")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	return ctx.Send(buf.Bytes())
}
