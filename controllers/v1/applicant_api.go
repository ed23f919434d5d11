package apiv1

import (
	"context"
	"fmt"

	"recruitment-desk-backend/controllers"
	"recruitment-desk-backend/lib/applicant"
	pdfexport "recruitment-desk-backend/lib/export/pdf"
	xlsexport "recruitment-desk-backend/lib/export/xls"
	filestorage "recruitment-desk-backend/lib/file-storage"
	"recruitment-desk-backend/middleware"
	apimodels "recruitment-desk-backend/models/api"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const applicantLockEntity = "applicant"

type applicantApiController struct {
	controllers.BaseAPIController
	fontDir string
}

// InitApplicantApiRouters fontDir - шрифты для карточки pdf, maxResumeSize - лимит файла резюме
func InitApplicantApiRouters(app fiber.Router, fontDir string, maxResumeSize int64) {
	controller := applicantApiController{fontDir: fontDir}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Put("accept", controller.accept)
			idRouter.Put("reject", controller.reject)
			idRouter.Put("retract", controller.retract)
			idRouter.Put("stage", controller.changeStage)
			idRouter.Put("ratings", controller.ratings)
			idRouter.Get("history", controller.history)
			idRouter.Get("card", controller.card)
			idRouter.Post("resume", middleware.WithBodyLimit(maxResumeSize), controller.uploadResume)
			idRouter.Get("resume", controller.getResume)
		})
	})
}

// @Summary Список кандидатов
// @Tags Кандидат
// @Description Список кандидатов с фильтром по статусу, этапу, подразделению и поиском по имени/email
// @Param	body body	 applicantapimodels.ApplicantFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicant.Instance.List(ctx.UserContext(), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка списка кандидатов в xlsx
// @Tags Кандидат
// @Description Выгрузка списка кандидатов в xlsx
// @Param	body body	 applicantapimodels.ApplicantFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/export [post]
func (c *applicantApiController) export(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicant.Instance.List(ctx.UserContext(), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	file, err := xlsexport.Instance.ExportApplicantList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Attachment("applicants.xlsx")
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}

// @Summary Создание
// @Tags Кандидат
// @Description Создание кандидата, статус и этап можно передать явно (импорт)
// @Param	body body	 applicantapimodels.ApplicantCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	var payload applicantapimodels.ApplicantCreate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicant.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Кандидат
// @Description Получение по ИД
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	resp, err := applicant.Instance.Get(ctx.UserContext(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление анкеты
// @Tags Кандидат
// @Description Обновление анкетных данных, статус/этап/оценки меняются отдельными методами
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Param	body body	 applicantapimodels.ApplicantData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [put]
func (c *applicantApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload applicantapimodels.ApplicantData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return applicant.Instance.Update(userCtx, id, payload)
	})
}

// @Summary Удаление
// @Tags Кандидат
// @Description Удаление кандидата вместе с историей и резюме
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [delete]
func (c *applicantApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		if err := applicant.Instance.Delete(userCtx, id); err != nil {
			return nil, err
		}
		if filestorage.Instance != nil {
			if err := filestorage.Instance.DeleteResume(userCtx, id); err != nil {
				log.WithError(err).WithField("applicant_id", id).Warn("ошибка удаления резюме удаленного кандидата")
			}
		}
		return nil, nil
	})
}

// @Summary Принять
// @Tags Кандидат
// @Description Принять кандидата
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/accept [put]
func (c *applicantApiController) accept(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return applicant.Instance.Accept(userCtx, id)
	})
}

// @Summary Отклонить
// @Tags Кандидат
// @Description Отклонить кандидата
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/reject [put]
func (c *applicantApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return applicant.Instance.Reject(userCtx, id)
	})
}

// @Summary Отменить решение
// @Tags Кандидат
// @Description Вернуть кандидата в статус "на рассмотрении"
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/retract [put]
func (c *applicantApiController) retract(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return applicant.Instance.Retract(userCtx, id)
	})
}

// @Summary Смена этапа
// @Tags Кандидат
// @Description Перевод кандидата на этап подбора
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Param	body body	 applicantapimodels.StageData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/stage [put]
func (c *applicantApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload applicantapimodels.StageData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return applicant.Instance.AdvanceStage(userCtx, id, payload.Stage)
	})
}

// @Summary Оценки
// @Tags Кандидат
// @Description Сохранение оценок теста и интервью, null - сброс оценки, отсутствие поля - без изменений
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Param	body body	 applicantapimodels.RatingsData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/ratings [put]
func (c *applicantApiController) ratings(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	var payload applicantapimodels.RatingsData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.WithRecordLock(ctx, applicantLockEntity, id, func(userCtx context.Context) (interface{}, error) {
		return applicant.Instance.RecordRatings(userCtx, id, payload)
	})
}

// @Summary История изменений
// @Tags Кандидат
// @Description История изменений кандидата
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.ApplicantHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/history [get]
func (c *applicantApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	list, err := applicant.Instance.History(ctx.UserContext(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Карточка кандидата
// @Tags Кандидат
// @Description Карточка оценки кандидата в pdf
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/card [get]
func (c *applicantApiController) card(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	view, err := applicant.Instance.Get(ctx.UserContext(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	body, err := pdfexport.GenerateApplicantCard(view, c.fontDir)
	if err != nil {
		log.WithError(err).WithField("applicant_id", id).Error("ошибка формирования карточки кандидата")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Attachment(fmt.Sprintf("applicant_%d.pdf", id))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Загрузить резюме кандидата
// @Tags Кандидат
// @Description Загрузить резюме кандидата, предыдущий файл заменяется
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Param   resume		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 413 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/applicant/{id}/resume [post]
func (c *applicantApiController) uploadResume(ctx *fiber.Ctx) error {
	if filestorage.Instance == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("файловое хранилище не настроено"))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	if _, err = applicant.Instance.Get(ctx.UserContext(), id); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не передан файл резюме"))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()

	contentType := file.Header.Get(fiber.HeaderContentType)
	err = filestorage.Instance.UploadResume(ctx.UserContext(), id, buffer, file.Size, file.Filename, contentType)
	if err != nil {
		log.WithError(err).WithField("applicant_id", id).Error("Ошибка при загрузке файла резюме")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Скачать резюме кандидата
// @Tags Кандидат
// @Description Скачать резюме кандидата
// @Param   id          		path    string  				    	true         "ID кандидата"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/applicant/{id}/resume [get]
func (c *applicantApiController) getResume(ctx *fiber.Ctx) error {
	if filestorage.Instance == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("файловое хранилище не настроено"))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	reader, info, err := filestorage.Instance.GetResume(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, filestorage.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("резюме не загружено"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Attachment(info.FileName)
	if info.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, info.ContentType)
	}
	return ctx.Status(fiber.StatusOK).SendStream(reader, int(info.Size))
}
