package apiv1

import (
	"context"

	"recruitment-desk-backend/controllers"
	"recruitment-desk-backend/lib/job"
	apimodels "recruitment-desk-backend/models/api"
	jobapimodels "recruitment-desk-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
)

const jobLockEntity = "job"

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app fiber.Router) {
	controller := jobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Put("review", controller.review)
			idRouter.Put("post", controller.post)
			idRouter.Put("retract", controller.retract)
		})
	})
}

// @Summary Список вакансий
// @Tags Вакансия
// @Description Список вакансий
// @Param	body body	 jobapimodels.JobFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/list [post]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := job.Instance.List(ctx.UserContext(), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии в статусе pending
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := job.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	resp, err := job.Instance.Get(ctx.UserContext(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Вакансия
// @Description Обновление, пустые поля не меняются
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload jobapimodels.JobData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, jobLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return job.Instance.Update(userCtx, id, payload)
	})
}

// @Summary Удаление
// @Tags Вакансия
// @Description Удаление
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.WithRecordLock(ctx, jobLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return nil, job.Instance.Delete(userCtx, id)
	})
}

// @Summary Согласование
// @Tags Вакансия
// @Description Согласование вакансии: accepted / rejected
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 jobapimodels.JobReview	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/review [put]
func (c *jobApiController) review(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload jobapimodels.JobReview
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, jobLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return job.Instance.Review(userCtx, id, payload.Status)
	})
}

// @Summary Публикация
// @Tags Вакансия
// @Description Публикация вакансии со сроком приема откликов
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 jobapimodels.JobPost	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/post [put]
func (c *jobApiController) post(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload jobapimodels.JobPost
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, jobLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return job.Instance.Post(userCtx, id, payload.Deadline)
	})
}

// @Summary Снятие с публикации
// @Tags Вакансия
// @Description Снятие с публикации, статус после снятия по умолчанию pending
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 jobapimodels.JobRetract	false	"request body"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id}/retract [put]
func (c *jobApiController) retract(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload jobapimodels.JobRetract
	if len(ctx.Body()) != 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	return c.WithRecordLock(ctx, jobLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return job.Instance.Retract(userCtx, id, payload.Status)
	})
}
