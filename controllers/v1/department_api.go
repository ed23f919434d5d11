package apiv1

import (
	"context"

	"recruitment-desk-backend/controllers"
	"recruitment-desk-backend/lib/department"
	apimodels "recruitment-desk-backend/models/api"
	departmentapimodels "recruitment-desk-backend/models/api/department"

	"github.com/gofiber/fiber/v2"
)

const departmentLockEntity = "department"

type departmentApiController struct {
	controllers.BaseAPIController
}

func InitDepartmentApiRouters(app fiber.Router) {
	controller := departmentApiController{}
	app.Route("department", func(router fiber.Router) {
		router.Post("find", controller.findByName)
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Get(":id", controller.get)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Создание
// @Tags Подразделение
// @Description Создание, администратор по умолчанию берется из настроек
// @Param	body body	 departmentapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department [post]
func (c *departmentApiController) create(ctx *fiber.Ctx) error {
	var payload departmentapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := department.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Подразделение
// @Description Обновление, пустые поля не меняются
// @Param	body body	 departmentapimodels.DepartmentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/{id} [put]
func (c *departmentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload departmentapimodels.DepartmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, departmentLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return department.Instance.Update(userCtx, id, payload)
	})
}

// @Summary Получение по ИД
// @Tags Подразделение
// @Description Получение по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/{id} [get]
func (c *departmentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	resp, err := department.Instance.Get(ctx.UserContext(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Подразделение
// @Description Список подразделений
// @Success 200 {object} apimodels.Response{data=[]departmentapimodels.DepartmentView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department [get]
func (c *departmentApiController) list(ctx *fiber.Ctx) error {
	list, err := department.Instance.List(ctx.UserContext())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление
// @Tags Подразделение
// @Description Удаление
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/{id} [delete]
func (c *departmentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.WithRecordLock(ctx, departmentLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return nil, department.Instance.Delete(userCtx, id)
	})
}

// @Summary Поиск по названию
// @Tags Подразделение
// @Description Поиск по названию
// @Param	body body	 departmentapimodels.DepartmentFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]departmentapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/department/find [post]
func (c *departmentApiController) findByName(ctx *fiber.Ctx) error {
	var payload departmentapimodels.DepartmentFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := department.Instance.FindByName(ctx.UserContext(), payload.Name)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
