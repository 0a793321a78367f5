package web

import (
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/dashboard"
	"recruitment-dashboard/lib/details"
	pdfexport "recruitment-dashboard/lib/export/pdf"
	"recruitment-dashboard/views"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type detailsApiController struct {
	controllers.BaseAPIController
	state      *dashboard.State
	printDelay time.Duration
}

func InitDetailsRouters(app fiber.Router, state *dashboard.State, printDelay time.Duration) {
	controller := detailsApiController{state: state, printDelay: printDelay}
	app.Route("candidates/:row", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Get("print", controller.print)
		router.Get("pdf", controller.pdf)
	})
}

// @Summary Карточка кандидата
// @Tags Кандидат
// @Param   row		path	int		true	"номер строки таблицы"
// @Param   q		query	string	false	"поиск по карточке"
// @Success 200
// @router /candidates/{row} [get]
func (c *detailsApiController) get(ctx *fiber.Ctx) error {
	row, view, err := c.view(ctx)
	if err != nil {
		return c.Respond(ctx, "/", "", err)
	}
	return c.Render(ctx, views.PageDetails, views.DetailsPage{
		Row:        row,
		PrintDelay: int(c.printDelay.Milliseconds()),
		View:       view,
	})
}

// @Summary Печатная версия карточки кандидата
// @Tags Кандидат
// @Produce html
// @Param   row		path	int		true	"номер строки таблицы"
// @Success 200
// @router /candidates/{row}/print [get]
func (c *detailsApiController) print(ctx *fiber.Ctx) error {
	_, view, err := c.view(ctx)
	if err != nil {
		return c.Respond(ctx, "/", "", err)
	}
	doc, err := details.PrintDocument(view, time.Now(), c.printDelay)
	if err != nil {
		log.WithError(err).Error("ошибка формирования печатной версии")
		return c.Respond(ctx, "/", "", err)
	}
	ctx.Type("html", "utf-8")
	return ctx.Send(doc)
}

// @Summary Карточка кандидата в PDF
// @Tags Кандидат
// @Produce application/pdf
// @Param   row		path	int		true	"номер строки таблицы"
// @Success 200
// @router /candidates/{row}/pdf [get]
func (c *detailsApiController) pdf(ctx *fiber.Ctx) error {
	row, view, err := c.view(ctx)
	if err != nil {
		return c.Respond(ctx, "/", "", err)
	}
	data, err := pdfexport.CandidateDetails(view, time.Now())
	if err != nil {
		log.WithError(err).WithField("row", row).Error("ошибка формирования pdf карточки")
		return c.Respond(ctx, "/", "", err)
	}
	ctx.Set(fiber.HeaderContentDisposition, attachment(pdfexport.FileName(row)))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Send(data)
}

func (c *detailsApiController) view(ctx *fiber.Ctx) (int, *details.View, error) {
	row, err := c.GetIntParam(ctx, "row")
	if err != nil {
		return 0, nil, err
	}
	record, ok := c.state.Row(row)
	if !ok {
		return row, nil, ErrCandidateNotFound
	}
	view := details.Instance.Render(ctx.UserContext(), record)
	view.Filter(ctx.Query("q"))
	return row, view, nil
}
