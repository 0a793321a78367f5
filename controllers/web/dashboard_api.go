package web

import (
	"fmt"
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/charts"
	"recruitment-dashboard/lib/dashboard"
	"recruitment-dashboard/lib/dashboard/fetcher"
	"recruitment-dashboard/lib/resume"
	"recruitment-dashboard/lib/table"
	"recruitment-dashboard/models"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	"recruitment-dashboard/views"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const ErrUnknownColumn = models.UserError("Unknown column.")

type dashboardApiController struct {
	controllers.BaseAPIController
	state *dashboard.State
}

type columnToggleRequest struct {
	Column  string `json:"column" form:"column"`
	Visible bool   `json:"visible" form:"visible"`
}

func InitDashboardRouters(app fiber.Router, state *dashboard.State) {
	controller := dashboardApiController{state: state}
	app.Get("", controller.index)
	app.Post("filters/reset", controller.resetFilters)
	app.Post("columns", controller.toggleColumn)
	app.Get("api/state", controller.getState)
}

// @Summary Дашборд
// @Tags Дашборд
// @Description Страница дашборда. Фильтры передаются в строке запроса, при их наличии данные загружаются заново.
// @Param   location		query	string	false	"Локация"
// @Param   start_date		query	string	false	"Дата с"
// @Param   refresh			query	string	false	"Перезагрузить данные"
// @Success 200
// @router / [get]
func (c *dashboardApiController) index(ctx *fiber.Ctx) error {
	if c.needsLoad(ctx) {
		filters := fetcher.FiltersFromQuery(func(key string) string { return ctx.Query(key) })
		if err := fetcher.Instance.LoadDashboard(ctx.UserContext(), filters); err != nil && !errors.Is(err, fetcher.ErrStaleResponse) {
			log.WithError(err).Warn("дашборд показан с баннером ошибки")
		}
	}
	return c.Render(ctx, views.PageDashboard, c.page(ctx))
}

// needsLoad данные грузятся при первом открытии, при отправке фильтров и по refresh
func (c *dashboardApiController) needsLoad(ctx *fiber.Ctx) bool {
	if c.state.Snapshot().AppliedSeq == 0 || ctx.Query("refresh") != "" {
		return true
	}
	for _, key := range dashboardapimodels.FilterKeys {
		if ctx.Query(key) != "" {
			return true
		}
	}
	return false
}

func (c *dashboardApiController) page(ctx *fiber.Ctx) views.DashboardPage {
	snapshot := c.state.Snapshot()
	tbl := table.Build(snapshot.Rows, snapshot.AllColumns, snapshot.DefaultColumns, table.WithResumeLinker(resume.Linker()))
	snapshot.Selection.Apply(tbl)

	page := views.DashboardPage{
		Flash:   c.Flash(ctx),
		Banner:  snapshot.ErrorBanner,
		Loading: snapshot.Loading,
		KPIs:    views.NewKPICards(snapshot.KPIs),
		Filters: views.NewFilterSelects(snapshot.FilterOptions, snapshot.Filters),
		Table:   tbl,
	}
	for _, column := range snapshot.Selection.Columns() {
		page.Columns = append(page.Columns, views.ColumnToggle{Name: column, Checked: snapshot.Selection.IsChecked(column)})
	}
	for _, def := range charts.Definitions {
		image := views.ChartImage{Name: def.Name, Title: def.Title, Kind: def.Kind, Empty: true}
		if instance, ok := c.state.Chart(def.Name); ok {
			image.Empty = len(instance.Labels) == 0
			image.URL = fmt.Sprintf("/charts/%s.png?v=%d.%d", def.Name, instance.Generation, instance.Revision)
		}
		page.Charts = append(page.Charts, image)
	}
	return page
}

// @Summary Сбросить фильтры
// @Tags Дашборд
// @Success 303
// @router /filters/reset [post]
func (c *dashboardApiController) resetFilters(ctx *fiber.Ctx) error {
	err := fetcher.Instance.ResetFilters(ctx.UserContext())
	if err != nil && !errors.Is(err, fetcher.ErrStaleResponse) {
		log.WithError(err).Warn("ошибка загрузки после сброса фильтров")
	}
	// ошибка загрузки уже на баннере дашборда
	return c.Respond(ctx, "/", "", nil)
}

// @Summary Показать или скрыть колонку таблицы
// @Tags Дашборд
// @Accept json
// @Param   body	body	columnToggleRequest	true	"колонка"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /columns [post]
func (c *dashboardApiController) toggleColumn(ctx *fiber.Ctx) error {
	var payload columnToggleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, "/", "", err)
	}
	err := c.state.ToggleColumn(payload.Column, payload.Visible)
	if errors.Is(err, table.ErrUnknownColumn) {
		err = ErrUnknownColumn
	}
	return c.Respond(ctx, "/", "", err)
}

// @Summary Состояние дашборда
// @Tags Дашборд
// @Produce json
// @Success 200 {object} dashboardapimodels.StateResponse
// @router /api/state [get]
func (c *dashboardApiController) getState(ctx *fiber.Ctx) error {
	snapshot := c.state.Snapshot()
	resp := dashboardapimodels.StateResponse{
		Loading:          snapshot.Loading,
		ErrorBanner:      snapshot.ErrorBanner,
		Filters:          snapshot.Filters,
		FiltersPopulated: snapshot.FiltersPopulated,
		KPIs:             snapshot.KPIs,
		Rows:             len(snapshot.Rows),
		AllColumns:       snapshot.AllColumns,
		CheckedColumns:   snapshot.Selection.Checked(),
		Charts:           []dashboardapimodels.ChartState{},
	}
	for _, def := range charts.Definitions {
		instance, ok := c.state.Chart(def.Name)
		if !ok {
			continue
		}
		resp.Charts = append(resp.Charts, dashboardapimodels.ChartState{
			Name:       instance.Name,
			Kind:       string(instance.Kind),
			Labels:     instance.Labels,
			Generation: instance.Generation,
			Revision:   instance.Revision,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}
