package applicant

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/config"
	"recruitment-desk-backend/db"
	applicanthistoryhandler "recruitment-desk-backend/lib/applicant-history"
	applicantstore "recruitment-desk-backend/lib/applicant/store"
	"recruitment-desk-backend/lib/integrity"
	"recruitment-desk-backend/lib/smtp"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	initchecker "recruitment-desk-backend/lib/utils/init-checker"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data applicantapimodels.ApplicantCreate) (applicantapimodels.ApplicantView, error)
	Update(ctx context.Context, id int, data applicantapimodels.ApplicantData) (applicantapimodels.ApplicantView, error)
	Get(ctx context.Context, id int) (applicantapimodels.ApplicantView, error)
	List(ctx context.Context, filter applicantapimodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, error)
	Delete(ctx context.Context, id int) error
	Accept(ctx context.Context, id int) (applicantapimodels.ApplicantView, error)
	Reject(ctx context.Context, id int) (applicantapimodels.ApplicantView, error)
	Retract(ctx context.Context, id int) (applicantapimodels.ApplicantView, error)
	AdvanceStage(ctx context.Context, id int, stage string) (applicantapimodels.ApplicantView, error)
	RecordRatings(ctx context.Context, id int, data applicantapimodels.RatingsData) (applicantapimodels.ApplicantView, error)
	History(ctx context.Context, id int) ([]applicantapimodels.ApplicantHistoryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		applicantstore.NewInstance(db.DB),
		integrity.Instance,
		applicanthistoryhandler.Instance,
		smtp.Instance,
		config.Conf.Smtp.EmailFrom,
	)
}

func NewInstance(store applicantstore.Provider, checker integrity.Provider, history applicanthistoryhandler.Provider,
	mailer smtp.Provider, mailFrom string) Provider {
	instance := impl{
		store:    store,
		checker:  checker,
		history:  history,
		mailer:   mailer,
		mailFrom: mailFrom,
		now:      time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"checker", instance.checker,
		"history", instance.history,
	)
	return instance
}

type impl struct {
	store    applicantstore.Provider
	checker  integrity.Provider
	history  applicanthistoryhandler.Provider
	mailer   smtp.Provider // nil - письма не отправляются
	mailFrom string
	now      func() time.Time
}

func (i impl) Create(ctx context.Context, data applicantapimodels.ApplicantCreate) (applicantapimodels.ApplicantView, error) {
	rec, err := parseProfile(data.ApplicantData)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	err = applyCreateOverrides(&rec, data)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	department, err := i.checker.RequireDepartment(ctx, rec.DepartmentID)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	id, err := i.store.Create(ctx, rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления кандидата")
		return applicantapimodels.ApplicantView{}, apperrors.Storage(err)
	}
	rec.ID = id
	rec.Department = &department
	i.history.Save(ctx, id, dbmodels.HistoryTypeAdded, applicanthistoryhandler.GetCreateChanges(rec))
	log.WithField("applicant_id", id).
		WithField("department_id", rec.DepartmentID).
		Info("кандидат добавлен")
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) Update(ctx context.Context, id int, data applicantapimodels.ApplicantData) (applicantapimodels.ApplicantView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	profile, err := parseProfile(data)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	newRec := rec
	newRec.FirstName = profile.FirstName
	newRec.LastName = profile.LastName
	newRec.Email = profile.Email
	newRec.CoverLetter = profile.CoverLetter
	newRec.JobPosition = profile.JobPosition
	newRec.DepartmentID = profile.DepartmentID
	newRec.DateApplied = profile.DateApplied
	if newRec.DepartmentID != rec.DepartmentID {
		department, err := i.checker.RequireDepartment(ctx, newRec.DepartmentID)
		if err != nil {
			return applicantapimodels.ApplicantView{}, err
		}
		newRec.Department = &department
	}
	updMap := profileUpdMap(newRec)
	err = i.store.Update(ctx, id, updMap)
	if err != nil {
		log.WithError(err).WithField("applicant_id", id).Error("ошибка обновления кандидата")
		return applicantapimodels.ApplicantView{}, apperrors.Storage(err)
	}
	changes := applicanthistoryhandler.GetUpdateChanges("Кандидат обновлен", rec, updMap)
	if len(changes.Data) != 0 {
		i.history.Save(ctx, id, dbmodels.HistoryTypeUpdate, changes)
	}
	log.WithField("applicant_id", id).Info("кандидат обновлен")
	return applicantapimodels.ApplicantConvert(newRec), nil
}

func (i impl) Get(ctx context.Context, id int) (applicantapimodels.ApplicantView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) List(ctx context.Context, filter applicantapimodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, error) {
	storeFilter, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	list, err := i.store.List(ctx, storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка кандидатов")
		return nil, apperrors.Storage(err)
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(ctx context.Context, id int) error {
	_, err := i.getRec(ctx, id)
	if err != nil {
		return err
	}
	err = i.store.Delete(ctx, id)
	if err != nil {
		log.WithError(err).WithField("applicant_id", id).Error("ошибка удаления кандидата")
		return apperrors.Storage(err)
	}
	log.WithField("applicant_id", id).Info("кандидат удален")
	return nil
}

func (i impl) Accept(ctx context.Context, id int) (applicantapimodels.ApplicantView, error) {
	rec, err := i.transition(ctx, id, dbmodels.HistoryTypeAccept, "Кандидат принят к отбору",
		func(rec dbmodels.Applicant) (dbmodels.Applicant, error) {
			return accept(rec, i.now().UTC())
		})
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	i.sendDecision(rec)
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) Reject(ctx context.Context, id int) (applicantapimodels.ApplicantView, error) {
	rec, err := i.transition(ctx, id, dbmodels.HistoryTypeReject, "Кандидат отклонен",
		func(rec dbmodels.Applicant) (dbmodels.Applicant, error) {
			return reject(rec, i.now().UTC())
		})
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	i.sendDecision(rec)
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) Retract(ctx context.Context, id int) (applicantapimodels.ApplicantView, error) {
	rec, err := i.transition(ctx, id, dbmodels.HistoryTypeRetract, "Решение по кандидату отозвано", retract)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) AdvanceStage(ctx context.Context, id int, stageValue string) (applicantapimodels.ApplicantView, error) {
	stage, err := parseStage(stageValue)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	rec, err := i.transition(ctx, id, dbmodels.HistoryTypeStageChange, applicanthistoryhandler.GetStageChange(stage),
		func(rec dbmodels.Applicant) (dbmodels.Applicant, error) {
			return advanceStage(rec, stage)
		})
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) RecordRatings(ctx context.Context, id int, data applicantapimodels.RatingsData) (applicantapimodels.ApplicantView, error) {
	in, err := parseRatings(data)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	rec, err := i.transition(ctx, id, dbmodels.HistoryTypeRating, "Выставлены оценки",
		func(rec dbmodels.Applicant) (dbmodels.Applicant, error) {
			return applyRatings(rec, in)
		})
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	return applicantapimodels.ApplicantConvert(rec), nil
}

func (i impl) History(ctx context.Context, id int) ([]applicantapimodels.ApplicantHistoryView, error) {
	_, err := i.getRec(ctx, id)
	if err != nil {
		return nil, err
	}
	return i.history.List(ctx, id)
}

// transition проверка и расчет нового состояния до единственной записи в хранилище
func (i impl) transition(ctx context.Context, id int, action dbmodels.ActionType, descr string,
	apply func(rec dbmodels.Applicant) (dbmodels.Applicant, error)) (dbmodels.Applicant, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return dbmodels.Applicant{}, err
	}
	newRec, err := apply(rec)
	if err != nil {
		return dbmodels.Applicant{}, err
	}
	err = checkRequired(newRec)
	if err != nil {
		return dbmodels.Applicant{}, err
	}
	updMap := newRec.WorkflowUpdMap()
	err = i.store.Update(ctx, id, updMap)
	if err != nil {
		log.WithError(err).
			WithField("applicant_id", id).
			WithField("action", action).
			Error("ошибка изменения состояния кандидата")
		return dbmodels.Applicant{}, apperrors.Storage(err)
	}
	i.history.Save(ctx, id, action, applicanthistoryhandler.GetUpdateChanges(descr, rec, updMap))
	log.WithField("applicant_id", id).
		WithField("action", action).
		WithField("status", newRec.Status).
		WithField("stage", newRec.Stage).
		Info("состояние кандидата изменено")
	return newRec, nil
}

func (i impl) getRec(ctx context.Context, id int) (dbmodels.Applicant, error) {
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).WithField("applicant_id", id).Error("ошибка получения кандидата")
		return dbmodels.Applicant{}, apperrors.Storage(err)
	}
	if rec == nil {
		return dbmodels.Applicant{}, apperrors.New(apperrors.KindApplicantNotFound, "id")
	}
	return *rec, nil
}

func (i impl) isMailEnabled() bool {
	return i.mailer != nil && i.mailFrom != ""
}
