package controllers

import (
	"context"
	"fmt"
	"strings"

	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/lib/utils/identifier"
	"recruitment-desk-backend/lib/utils/lock"
	apimodels "recruitment-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// GetID идентификатор записи из пути :id
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (int, error) {
	return identifier.Parse(ctx.Params("id"))
}

// ErrorResponse ответ с http статусом по типу ошибки
func (c *BaseAPIController) ErrorResponse(ctx *fiber.Ctx, err error) error {
	status, message := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).
			WithField("path", ctx.Path()).
			Error("ошибка обработки запроса")
	}
	return ctx.Status(status).JSON(apimodels.NewError(message, apperrors.FieldsOf(err)...))
}

// WithRecordLock выполняет изменение записи под блокировкой и пишет ответ, занятая запись - 409
func (c *BaseAPIController) WithRecordLock(ctx *fiber.Ctx, entity string, id int, safeCode func(userCtx context.Context) (interface{}, error)) error {
	userCtx := ctx.UserContext()
	var result interface{}
	ok, err := lock.Instance.WithLock(userCtx, lock.Key(entity, id), func() error {
		var codeErr error
		result, codeErr = safeCode(userCtx)
		return codeErr
	})
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	if !ok {
		log.WithField("lock_key", lock.Key(entity, id)).Warn("запись заблокирована другим запросом")
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError("запись изменяется другим запросом, повторите позже"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

var kindMessages = map[apperrors.Kind]string{
	apperrors.KindInvalidIdentifier:     "некорректный идентификатор",
	apperrors.KindMissingRequiredFields: "не заполнены обязательные поля",
	apperrors.KindDepartmentNotFound:    "подразделение не найдено",
	apperrors.KindAdminNotFound:         "администратор не найден",
	apperrors.KindDefaultAdminMissing:   "не настроен администратор по умолчанию",
	apperrors.KindRatingOutOfRange:      "оценка должна быть в диапазоне от 0 до 50",
	apperrors.KindTestRatingRequired:    "введите и сохраните оценку теста перед переходом на этап интервью",
	apperrors.KindInvalidTransition:     "действие недоступно в текущем статусе",
	apperrors.KindDeadlineRequired:      "укажите срок публикации вакансии",
	apperrors.KindDeadlineInPast:        "срок публикации вакансии уже прошел",
	apperrors.KindStorageError:          "ошибка хранилища данных",
	apperrors.KindApplicantNotFound:     "кандидат не найден",
	apperrors.KindJobNotFound:           "вакансия не найдена",
	apperrors.KindUserNotFound:          "пользователь не найден",
	apperrors.KindDuplicateDepartment:   "подразделение с таким названием уже существует",
	apperrors.KindInvalidValue:          "некорректное значение",
}

// ErrorStatus http статус и текст для ошибки бизнес-логики
func ErrorStatus(err error) (status int, message string) {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		return fiber.StatusInternalServerError, err.Error()
	}
	message = kindMessages[kind]
	fields := apperrors.FieldsOf(err)
	if len(fields) > 0 && kind != apperrors.KindTestRatingRequired {
		message = fmt.Sprintf("%s: %s", message, strings.Join(fields, ", "))
	}
	switch kind {
	case apperrors.KindApplicantNotFound, apperrors.KindJobNotFound,
		apperrors.KindDepartmentNotFound, apperrors.KindUserNotFound, apperrors.KindAdminNotFound:
		// ссылка из тела запроса на несуществующую запись - ошибка запроса
		if len(fields) == 1 && fields[0] == "id" {
			return fiber.StatusNotFound, message
		}
		return fiber.StatusBadRequest, message
	case apperrors.KindInvalidTransition:
		return fiber.StatusConflict, message
	case apperrors.KindDuplicateDepartment:
		return fiber.StatusConflict, message
	case apperrors.KindStorageError:
		if errors.Is(err, context.DeadlineExceeded) {
			return fiber.StatusServiceUnavailable, message
		}
		return fiber.StatusInternalServerError, message
	case apperrors.KindDefaultAdminMissing:
		return fiber.StatusInternalServerError, message
	}
	return fiber.StatusBadRequest, message
}
