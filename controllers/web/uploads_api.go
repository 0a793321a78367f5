package web

import (
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/backend"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type uploadsApiController struct {
	controllers.BaseAPIController
}

func InitUploadsRouters(app fiber.Router) {
	controller := uploadsApiController{}
	app.Get("uploads/:file", controller.get)
}

// @Summary Файл резюме
// @Tags Кандидат
// @Description Проксирует файл из статики backend
// @Param   file	path	string	true	"имя файла"
// @Success 200
// @Failure 404
// @router /uploads/{file} [get]
func (c *uploadsApiController) get(ctx *fiber.Ctx) error {
	fileName := ctx.Params("file")
	upload, err := backend.Instance.GetUpload(ctx.UserContext(), fileName)
	if err != nil {
		log.WithError(err).WithField("file", fileName).Warn("ошибка получения файла резюме")
		return ctx.Status(controllers.StatusFor(err)).SendString(backend.UserMessage(err))
	}
	if upload.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, upload.ContentType)
	}
	return ctx.Send(upload.Body)
}
