package admin

import (
	"recruitment-dashboard/controllers"
	"recruitment-dashboard/lib/admin/users"
	"recruitment-dashboard/lib/backend"
	apimodels "recruitment-dashboard/models/api"
	usersapimodels "recruitment-dashboard/models/api/users"
	"recruitment-dashboard/views"

	"github.com/gofiber/fiber/v2"
)

const (
	usersPage      = "/admin/users"
	MsgUserAdded   = "User added successfully."
	MsgUserDeleted = "User deleted successfully."
)

type usersApiController struct {
	controllers.BaseAPIController
}

type userDeleteRequest struct {
	ID      int  `json:"id" form:"id"`
	Confirm bool `json:"confirm" form:"confirm"`
}

func InitUsersRouters(app fiber.Router) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("add", controller.add)
		router.Post("delete", controller.delete)
	})
}

// @Summary Пользователи
// @Tags Администрирование
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.User}
// @Failure 403 {object} apimodels.Response
// @router /admin/users [get]
func (c *usersApiController) list(ctx *fiber.Ctx) error {
	list, err := users.Instance.List(ctx.UserContext())
	if controllers.WantsJSON(ctx) {
		if err != nil {
			return ctx.Status(controllers.StatusFor(err)).JSON(apimodels.NewError(backend.UserMessage(err)))
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
	}
	page := views.UsersPage{
		Flash: c.Flash(ctx),
		Users: list,
	}
	if err != nil && page.Error == "" {
		page.Error = backend.UserMessage(err)
	}
	return c.Render(ctx, views.PageUsers, page)
}

// @Summary Добавить пользователя
// @Tags Администрирование
// @Description Пользователь создается с ролью viewer
// @Accept json
// @Param   body	body	usersapimodels.CreateRequest	true	"email и пароль"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/users/add [post]
func (c *usersApiController) add(ctx *fiber.Ctx) error {
	var payload usersapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, usersPage, "", err)
	}
	message, err := users.Instance.Add(ctx.UserContext(), payload)
	if message == "" {
		message = MsgUserAdded
	}
	return c.Respond(ctx, usersPage, message, err)
}

// @Summary Удалить пользователя
// @Tags Администрирование
// @Description Администратора удалить нельзя, удаление требует confirm
// @Accept json
// @Param   body	body	userDeleteRequest	true	"id пользователя"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /admin/users/delete [post]
func (c *usersApiController) delete(ctx *fiber.Ctx) error {
	var payload userDeleteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.Respond(ctx, usersPage, "", err)
	}
	err := users.Instance.Delete(ctx.UserContext(), payload.ID, payload.Confirm)
	return c.Respond(ctx, usersPage, MsgUserDeleted, err)
}
