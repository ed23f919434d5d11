package db

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/config"
	userstore "recruitment-desk-backend/lib/user/store"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

func InitPreload() {
	addDefaultAdmin()
}

// addDefaultAdmin администратор по умолчанию для подразделений, создаваемых без admin_id
func addDefaultAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор по умолчанию не добавлен, отсутвует настройка ADMIN_EMAIL")
		return
	}
	ctx := context.Background()
	store := userstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(ctx, config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора по умолчанию")
		return
	}
	if existedRec != nil {
		if existedRec.ID != config.Conf.Recruitment.DefaultAdminID {
			log.WithField("user_id", existedRec.ID).
				WithField("default_admin_id", config.Conf.Recruitment.DefaultAdminID).
				Warn("администратор из ADMIN_EMAIL не совпадает с DEFAULT_ADMIN_ID")
		}
		return
	}
	rec := dbmodels.User{
		Name:  config.Conf.Admin.Name,
		Email: config.Conf.Admin.Email,
		Role:  models.UserRoleAdmin,
	}
	id, err := store.Create(ctx, rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора по умолчанию")
		return
	}
	log.WithField("user_id", id).Info("добавлен администратор по умолчанию")
}
