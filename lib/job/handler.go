package job

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/db"
	"recruitment-desk-backend/lib/integrity"
	jobstore "recruitment-desk-backend/lib/job/store"
	apperrors "recruitment-desk-backend/lib/utils/app-errors"
	"recruitment-desk-backend/lib/utils/helpers"
	"recruitment-desk-backend/lib/utils/identifier"
	initchecker "recruitment-desk-backend/lib/utils/init-checker"
	"recruitment-desk-backend/models"
	jobapimodels "recruitment-desk-backend/models/api/job"
	dbmodels "recruitment-desk-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data jobapimodels.JobData) (jobapimodels.JobView, error)
	Update(ctx context.Context, id int, data jobapimodels.JobData) (jobapimodels.JobView, error)
	Get(ctx context.Context, id int) (jobapimodels.JobView, error)
	List(ctx context.Context, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error)
	Delete(ctx context.Context, id int) error
	Review(ctx context.Context, id int, status string) (jobapimodels.JobView, error)
	Post(ctx context.Context, id int, deadline any) (jobapimodels.JobView, error)
	Retract(ctx context.Context, id int, revertTo string) (jobapimodels.JobView, error)
	// ExpireOverdue снимает с публикации вакансии с прошедшим дедлайном
	ExpireOverdue(ctx context.Context) (int, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(jobstore.NewInstance(db.DB), integrity.Instance)
}

func NewInstance(store jobstore.Provider, checker integrity.Provider) Provider {
	instance := impl{
		store:   store,
		checker: checker,
		now:     time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"checker", instance.checker,
	)
	return instance
}

type impl struct {
	store   jobstore.Provider
	checker integrity.Provider
	now     func() time.Time
}

var members = []string{"team_lead_id", "admin_id", "manager_id", "hr_id"}

func (i impl) Create(ctx context.Context, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	rec := dbmodels.Job{
		Title:            strings.TrimSpace(data.Title),
		Location:         strings.TrimSpace(data.Location),
		Type:             strings.TrimSpace(data.Type),
		Description:      data.Description,
		Responsibilities: data.Responsibilities,
		Requirements:     data.Requirements,
		PreferredSkills:  data.PreferredSkills,
		KeySuggestions:   pq.StringArray(data.KeySuggestions),
		Status:           models.JobStatusPending,
	}
	missing := []string{}
	if rec.Title == "" {
		missing = append(missing, "title")
	}
	if identifier.IsAbsent(data.DepartmentID) {
		missing = append(missing, "department_id")
	}
	if rec.Location == "" {
		missing = append(missing, "location")
	}
	if rec.Type == "" {
		missing = append(missing, "type")
	}
	if len(missing) != 0 {
		return jobapimodels.JobView{}, apperrors.New(apperrors.KindMissingRequiredFields, missing...)
	}
	departmentID, err := identifier.ParseField("department_id", data.DepartmentID)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	department, err := i.checker.RequireDepartment(ctx, departmentID)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	rec.DepartmentID = departmentID
	refs, err := i.checkMembers(ctx, data)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	rec.TeamLeadID, rec.AdminID, rec.ManagerID, rec.HrID = refs["team_lead_id"], refs["admin_id"], refs["manager_id"], refs["hr_id"]

	id, err := i.store.Create(ctx, rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления вакансии")
		return jobapimodels.JobView{}, apperrors.Storage(err)
	}
	rec.ID = id
	rec.Department = &department
	log.WithField("job_id", id).
		WithField("department_id", departmentID).
		Info("вакансия добавлена")
	return jobapimodels.JobConvert(rec), nil
}

// Update переданные поля; обязательные поля пустыми не затираются
func (i impl) Update(ctx context.Context, id int, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	updMap := map[string]interface{}{}
	setText := func(key string, value string, required bool, target *string) {
		if required {
			value = strings.TrimSpace(value)
		}
		if value == "" || value == *target {
			return
		}
		*target = value
		updMap[key] = value
	}
	setText("title", data.Title, true, &rec.Title)
	setText("location", data.Location, true, &rec.Location)
	setText("type", data.Type, true, &rec.Type)
	setText("description", data.Description, false, &rec.Description)
	setText("responsibilities", data.Responsibilities, false, &rec.Responsibilities)
	setText("requirements", data.Requirements, false, &rec.Requirements)
	setText("preferred_skills", data.PreferredSkills, false, &rec.PreferredSkills)
	if data.KeySuggestions != nil {
		rec.KeySuggestions = pq.StringArray(data.KeySuggestions)
		updMap["key_suggestions"] = rec.KeySuggestions
	}
	if !identifier.IsAbsent(data.DepartmentID) {
		departmentID, err := identifier.ParseField("department_id", data.DepartmentID)
		if err != nil {
			return jobapimodels.JobView{}, err
		}
		department, err := i.checker.RequireDepartment(ctx, departmentID)
		if err != nil {
			return jobapimodels.JobView{}, err
		}
		rec.DepartmentID = departmentID
		rec.Department = &department
		updMap["department_id"] = departmentID
	}
	refs, err := i.checkMembers(ctx, data)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	targets := map[string]**int{
		"team_lead_id": &rec.TeamLeadID,
		"admin_id":     &rec.AdminID,
		"manager_id":   &rec.ManagerID,
		"hr_id":        &rec.HrID,
	}
	for field, ref := range refs {
		*targets[field] = ref
		updMap[field] = ref
	}
	err = i.store.Update(ctx, id, updMap)
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("ошибка обновления вакансии")
		return jobapimodels.JobView{}, apperrors.Storage(err)
	}
	log.WithField("job_id", id).Info("вакансия обновлена")
	return jobapimodels.JobConvert(rec), nil
}

func (i impl) Get(ctx context.Context, id int) (jobapimodels.JobView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(rec), nil
}

func (i impl) List(ctx context.Context, filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	storeFilter := dbmodels.JobFilter{
		Posted: filter.Posted,
	}
	if strings.TrimSpace(filter.Status) != "" {
		status, ok := models.ParseJobStatus(filter.Status)
		if !ok {
			return nil, apperrors.New(apperrors.KindInvalidValue, "status")
		}
		storeFilter.Status = status
	}
	if !identifier.IsAbsent(filter.DepartmentID) {
		departmentID, err := identifier.ParseField("department_id", filter.DepartmentID)
		if err != nil {
			return nil, err
		}
		storeFilter.DepartmentID = departmentID
	}
	list, err := i.store.List(ctx, storeFilter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, apperrors.Storage(err)
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
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
		log.WithError(err).WithField("job_id", id).Error("ошибка удаления вакансии")
		return apperrors.Storage(err)
	}
	log.WithField("job_id", id).Info("вакансия удалена")
	return nil
}

func (i impl) Review(ctx context.Context, id int, statusValue string) (jobapimodels.JobView, error) {
	status, ok := models.ParseJobStatus(statusValue)
	if !ok || !status.IsReviewResult() {
		return jobapimodels.JobView{}, apperrors.New(apperrors.KindInvalidValue, "status")
	}
	return i.transition(ctx, id, func(rec dbmodels.Job) (dbmodels.Job, error) {
		return review(rec, status)
	})
}

func (i impl) Post(ctx context.Context, id int, deadlineValue any) (jobapimodels.JobView, error) {
	deadline, err := helpers.ParseDate("deadline", deadlineValue)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	now := i.now()
	return i.transition(ctx, id, func(rec dbmodels.Job) (dbmodels.Job, error) {
		return post(rec, deadline, now)
	})
}

func (i impl) Retract(ctx context.Context, id int, revertTo string) (jobapimodels.JobView, error) {
	status := models.JobStatusPending
	if strings.TrimSpace(revertTo) != "" {
		parsed, ok := models.ParseJobStatus(revertTo)
		if !ok {
			return jobapimodels.JobView{}, apperrors.New(apperrors.KindInvalidValue, "status")
		}
		status = parsed
	}
	return i.transition(ctx, id, func(rec dbmodels.Job) (dbmodels.Job, error) {
		return retract(rec, status)
	})
}

func (i impl) ExpireOverdue(ctx context.Context) (int, error) {
	today := helpers.StartOfDay(i.now())
	list, err := i.store.List(ctx, dbmodels.JobFilter{DeadlineTo: &today})
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	expired := 0
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if !rec.IsExpired(today) {
			continue
		}
		newRec, err := retract(rec, models.JobStatusRetracted)
		if err != nil {
			continue
		}
		err = i.store.Update(ctx, rec.ID, postingUpdMap(newRec))
		if err != nil {
			log.WithError(err).WithField("job_id", rec.ID).Error("ошибка снятия вакансии с публикации по дедлайну")
			continue
		}
		expired++
		log.WithField("job_id", rec.ID).
			WithField("deadline", helpers.FormatDate(rec.Deadline)).
			Info("вакансия снята с публикации по дедлайну")
	}
	return expired, nil
}

func (i impl) transition(ctx context.Context, id int, apply func(rec dbmodels.Job) (dbmodels.Job, error)) (jobapimodels.JobView, error) {
	rec, err := i.getRec(ctx, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	newRec, err := apply(rec)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	err = i.store.Update(ctx, id, postingUpdMap(newRec))
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("ошибка изменения статуса вакансии")
		return jobapimodels.JobView{}, apperrors.Storage(err)
	}
	log.WithField("job_id", id).
		WithField("status", newRec.Status).
		WithField("posted", newRec.Posted).
		Info("статус вакансии изменен")
	return jobapimodels.JobConvert(newRec), nil
}

// checkMembers только переданные ссылки на пользователей
func (i impl) checkMembers(ctx context.Context, data jobapimodels.JobData) (map[string]*int, error) {
	values := map[string]any{
		"team_lead_id": data.TeamLeadID,
		"admin_id":     data.AdminID,
		"manager_id":   data.ManagerID,
		"hr_id":        data.HrID,
	}
	result := map[string]*int{}
	for _, field := range members {
		if identifier.IsAbsent(values[field]) {
			continue
		}
		ref, err := i.checker.RequireMember(ctx, field, values[field])
		if err != nil {
			return nil, err
		}
		result[field] = ref
	}
	return result, nil
}

func (i impl) getRec(ctx context.Context, id int) (dbmodels.Job, error) {
	rec, err := i.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("ошибка получения вакансии")
		return dbmodels.Job{}, apperrors.Storage(err)
	}
	if rec == nil {
		return dbmodels.Job{}, apperrors.New(apperrors.KindJobNotFound, "id")
	}
	return *rec, nil
}
