package web

import (
	"fmt"
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/dashboard"
	xlsexport "recruitment-dashboard/lib/export/xls"
	"recruitment-dashboard/lib/table"

	"github.com/gofiber/fiber/v2"
)

type exportApiController struct {
	controllers.BaseAPIController
	state *dashboard.State
}

func InitExportRouters(app fiber.Router, state *dashboard.State) {
	controller := exportApiController{state: state}
	app.Route("export", func(router fiber.Router) {
		router.Get("csv", controller.csv)
		router.Get("xlsx", controller.xlsx)
	})
}

// @Summary Выгрузка таблицы в CSV
// @Tags Выгрузка
// @Produce text/csv
// @Success 200
// @Failure 400 {object} apimodels.Response
// @router /export/csv [get]
func (c *exportApiController) csv(ctx *fiber.Ctx) error {
	data, err := table.ExportCSV(c.state.Rows(), c.state.CheckedColumns())
	if err != nil {
		return c.Respond(ctx, "/", "", noData(err))
	}
	ctx.Set(fiber.HeaderContentDisposition, attachment(table.CSVFileName))
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return ctx.SendString(data)
}

// @Summary Выгрузка таблицы в Excel
// @Tags Выгрузка
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Failure 400 {object} apimodels.Response
// @router /export/xlsx [get]
func (c *exportApiController) xlsx(ctx *fiber.Ctx) error {
	buf, err := xlsexport.Instance.ExportTable(c.state.Rows(), c.state.CheckedColumns())
	if err != nil {
		return c.Respond(ctx, "/", "", noData(err))
	}
	ctx.Set(fiber.HeaderContentDisposition, attachment(xlsexport.FileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(buf.Bytes())
}

func attachment(fileName string) string {
	return fmt.Sprintf("attachment; filename=%q", fileName)
}
