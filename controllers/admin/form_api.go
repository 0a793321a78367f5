package admin

import (
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/admin/formconfig"
	"recruitment-dashboard/lib/admin/reorder"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard/fetcher"
	"recruitment-dashboard/models"
	apimodels "recruitment-dashboard/models/api"
	formconfigapimodels "recruitment-dashboard/models/api/formconfig"
	"recruitment-dashboard/views"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	formPage            = "/admin/form"
	MsgFieldAdded       = "Field added successfully!"
	MsgFieldUpdated     = "Field updated successfully!"
	MsgFieldDeleted     = "Field deleted successfully!"
	MsgRequiredUpdated  = "Required flag updated."
	MsgValidationSaved  = "Validation rule saved."
	MsgOrderChanged     = "Order changed. Save to apply."
	MsgSectionCreated   = "Section created successfully!"
	MsgSectionRenamed   = "Section updated successfully!"
	MsgSectionDeleted   = "Section deleted successfully!"
	MsgSectionOrderSave = "Section order saved successfully!"

	ErrInvalidPosition = models.UserError("Invalid position.")
)

type formApiController struct {
	controllers.BaseAPIController
}

// fieldEditRequest пустое значение атрибута означает "без изменений"
type fieldEditRequest struct {
	Label       string `json:"label" form:"label"`
	Type        string `json:"type" form:"type"`
	Subsection  string `json:"subsection" form:"subsection"`
	Options     string `json:"options" form:"options"`
	Required    string `json:"required" form:"required"`
	Validations string `json:"validations" form:"validations"`
}

func (r fieldEditRequest) Update() (formconfigapimodels.FieldUpdate, error) {
	update := formconfigapimodels.FieldUpdate{}
	if r.Label != "" {
		update.Label = &r.Label
	}
	if r.Type != "" {
		fieldType := models.FieldType(r.Type)
		update.Type = &fieldType
	}
	if r.Subsection != "" {
		update.Subsection = &r.Subsection
	}
	if r.Options != "" {
		update.Options = &r.Options
	}
	if r.Validations != "" {
		update.Validations = &r.Validations
	}
	if r.Required != "" {
		required, err := strconv.ParseBool(r.Required)
		if err != nil {
			return update, models.UserError("Invalid required value.")
		}
		update.Required = &required
	}
	return update, nil
}

type confirmRequest struct {
	Confirm bool `json:"confirm" form:"confirm"`
}

type requiredRequest struct {
	Required bool `json:"required" form:"required"`
}

type validationRequest struct {
	Rule  string `json:"rule" form:"rule"`
	Value string `json:"value" form:"value"`
}

type moveRequest struct {
	From int `json:"from" form:"from"`
	To   int `json:"to" form:"to"`
}

type sectionRenameRequest struct {
	Name    string `json:"name" form:"name"`
	NewName string `json:"new_name" form:"new_name"`
}

type sectionDeleteRequest struct {
	Name    string `json:"name" form:"name"`
	Confirm bool   `json:"confirm" form:"confirm"`
}

func InitFormRouters(app fiber.Router) {
	controller := formApiController{}
	app.Route("form", func(router fiber.Router) {
		router.Get("", controller.open)
		router.Post("close", controller.close)

		router.Post("fields", controller.addField)
		// маршруты порядка регистрируются раньше fields/:id
		router.Post("fields/order/move", controller.moveField)
		router.Post("fields/order/save", controller.saveFieldOrder)
		router.Post("fields/:id", controller.editField)
		router.Post("fields/:id/delete", controller.deleteField)
		router.Post("fields/:id/required", controller.toggleRequired)
		router.Post("fields/:id/validations", controller.setValidation)

		router.Post("sections", controller.createSection)
		router.Post("sections/rename", controller.renameSection)
		router.Post("sections/delete", controller.deleteSection)
		router.Post("sections/order/move", controller.moveSection)
		router.Post("sections/order/save", controller.saveSectionOrder)
	})
}

// @Summary Настройка формы
// @Tags Администрирование
// @Description Загружает поля и разделы формы
// @Success 200
// @router /admin/form [get]
func (c *formApiController) open(ctx *fiber.Ctx) error {
	view, err := formconfig.Instance.Open(ctx.UserContext())
	if err != nil {
		if controllers.WantsJSON(ctx) {
			return ctx.Status(controllers.StatusFor(err)).JSON(apimodels.NewError(backend.UserMessage(err)))
		}
		cached := formconfig.Instance.View()
		view = &cached
	}
	if controllers.WantsJSON(ctx) {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
	}
	page := views.FormPage{
		Flash:        c.Flash(ctx),
		View:         view,
		FieldTypes:   models.FieldTypes,
		SectionIcons: models.SectionIcons,
		Rules:        formconfig.ValidationRules,
	}
	if err != nil && page.Error == "" {
		page.Error = backend.UserMessage(err)
	}
	return c.Render(ctx, views.PageForm, page)
}

// @Summary Закрыть настройку формы
// @Tags Администрирование
// @Description Закрытие перезагружает дашборд
// @Success 303
// @router /admin/form/close [post]
func (c *formApiController) close(ctx *fiber.Ctx) error {
	if err := fetcher.Instance.Reload(ctx.UserContext()); err != nil && !errors.Is(err, fetcher.ErrStaleResponse) {
		log.WithError(err).Warn("ошибка перезагрузки дашборда после настройки формы")
	}
	return c.Respond(ctx, "/", "", nil)
}

// @Summary Добавить поле
// @Tags Администрирование
// @Accept json
// @Param   body	body	formconfigapimodels.FieldCreateRequest	true	"поле"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/fields [post]
func (c *formApiController) addField(ctx *fiber.Ctx) error {
	var payload formconfigapimodels.FieldCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	message, err := formconfig.Instance.AddField(ctx.UserContext(), payload)
	if message == "" {
		message = MsgFieldAdded
	}
	return c.Respond(ctx, formPage, message, err)
}

// @Summary Изменить поле
// @Tags Администрирование
// @Accept json
// @Param   id		path	int					true	"id поля"
// @Param   body	body	fieldEditRequest	true	"измененные атрибуты"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/fields/{id} [post]
func (c *formApiController) editField(ctx *fiber.Ctx) error {
	fieldID, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	var payload fieldEditRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	update, err := payload.Update()
	if err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err = formconfig.Instance.EditField(ctx.UserContext(), fieldID, update)
	return c.Respond(ctx, formPage, MsgFieldUpdated, err)
}

// @Summary Удалить поле
// @Tags Администрирование
// @Description Основные поля удалить нельзя, удаление требует confirm
// @Param   id		path	int				true	"id поля"
// @Param   body	body	confirmRequest	true	"подтверждение"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/fields/{id}/delete [post]
func (c *formApiController) deleteField(ctx *fiber.Ctx) error {
	fieldID, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	var payload confirmRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err = formconfig.Instance.DeleteField(ctx.UserContext(), fieldID, payload.Confirm)
	return c.Respond(ctx, formPage, MsgFieldDeleted, err)
}

// @Summary Обязательность поля
// @Tags Администрирование
// @Param   id		path	int				true	"id поля"
// @Param   body	body	requiredRequest	true	"признак"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/fields/{id}/required [post]
func (c *formApiController) toggleRequired(ctx *fiber.Ctx) error {
	fieldID, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	var payload requiredRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err = formconfig.Instance.ToggleRequired(ctx.UserContext(), fieldID, payload.Required)
	return c.Respond(ctx, formPage, MsgRequiredUpdated, err)
}

// @Summary Правило проверки поля
// @Tags Администрирование
// @Description Пустое значение удаляет правило
// @Param   id		path	int					true	"id поля"
// @Param   body	body	validationRequest	true	"правило и значение"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/fields/{id}/validations [post]
func (c *formApiController) setValidation(ctx *fiber.Ctx) error {
	fieldID, err := c.GetIntParam(ctx, "id")
	if err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	var payload validationRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err = formconfig.Instance.SetValidation(ctx.UserContext(), fieldID, payload.Rule, payload.Value)
	return c.Respond(ctx, formPage, MsgValidationSaved, err)
}

// @Summary Переместить поле в черновике порядка
// @Tags Администрирование
// @Param   body	body	moveRequest	true	"позиции"
// @Success 200 {object} apimodels.Response
// @router /admin/form/fields/order/move [post]
func (c *formApiController) moveField(ctx *fiber.Ctx) error {
	var payload moveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err := formconfig.Instance.MoveField(payload.From, payload.To)
	return c.Respond(ctx, formPage, MsgOrderChanged, positionError(err))
}

// @Summary Сохранить порядок полей
// @Tags Администрирование
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/fields/order/save [post]
func (c *formApiController) saveFieldOrder(ctx *fiber.Ctx) error {
	err := formconfig.Instance.SaveFieldOrder(ctx.UserContext())
	return c.Respond(ctx, formPage, formconfig.MsgFieldOrderSaved, err)
}

// @Summary Создать раздел
// @Tags Администрирование
// @Accept json
// @Param   body	body	formconfigapimodels.SectionRequest	true	"раздел"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/sections [post]
func (c *formApiController) createSection(ctx *fiber.Ctx) error {
	var payload formconfigapimodels.SectionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err := formconfig.Instance.CreateSection(ctx.UserContext(), payload)
	return c.Respond(ctx, formPage, MsgSectionCreated, err)
}

// @Summary Переименовать раздел
// @Tags Администрирование
// @Param   body	body	sectionRenameRequest	true	"текущее и новое имя"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/sections/rename [post]
func (c *formApiController) renameSection(ctx *fiber.Ctx) error {
	var payload sectionRenameRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err := formconfig.Instance.RenameSection(ctx.UserContext(), payload.Name, payload.NewName)
	return c.Respond(ctx, formPage, MsgSectionRenamed, err)
}

// @Summary Удалить раздел
// @Tags Администрирование
// @Description Раздел с полями удалить нельзя, удаление требует confirm
// @Param   body	body	sectionDeleteRequest	true	"имя раздела"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/sections/delete [post]
func (c *formApiController) deleteSection(ctx *fiber.Ctx) error {
	var payload sectionDeleteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err := formconfig.Instance.DeleteSection(ctx.UserContext(), payload.Name, payload.Confirm)
	return c.Respond(ctx, formPage, MsgSectionDeleted, err)
}

// @Summary Переместить раздел в черновике порядка
// @Tags Администрирование
// @Param   body	body	moveRequest	true	"позиции"
// @Success 200 {object} apimodels.Response
// @router /admin/form/sections/order/move [post]
func (c *formApiController) moveSection(ctx *fiber.Ctx) error {
	var payload moveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, formPage, "", err)
	}
	err := formconfig.Instance.MoveSection(payload.From, payload.To)
	return c.Respond(ctx, formPage, MsgOrderChanged, positionError(err))
}

// @Summary Сохранить порядок разделов
// @Tags Администрирование
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/form/sections/order/save [post]
func (c *formApiController) saveSectionOrder(ctx *fiber.Ctx) error {
	err := formconfig.Instance.SaveSectionOrder(ctx.UserContext())
	return c.Respond(ctx, formPage, MsgSectionOrderSave, err)
}

func positionError(err error) error {
	if errors.Is(err, reorder.ErrIndexOutOfRange) {
		return ErrInvalidPosition
	}
	return err
}
