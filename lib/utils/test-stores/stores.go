// Package teststores in-memory реализации хранилищ для тестов бизнес-логики
package teststores

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

var errNotFound = errors.New("запись не найдена")

// counters общий учет операций записи, чтобы проверять "валидация до записи"
type counters struct {
	mu     sync.Mutex
	nextID int
	Writes int
	Err    error // если задана, возвращается любой операцией
}

func (c *counters) write() (int, error) {
	if c.Err != nil {
		return 0, c.Err
	}
	c.Writes++
	c.nextID++
	return c.nextID, nil
}

func (c *counters) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Err
}

type Applicants struct {
	counters
	Recs map[int]dbmodels.Applicant
}

func NewApplicants() *Applicants {
	return &Applicants{Recs: map[int]dbmodels.Applicant{}}
}

func (s *Applicants) Create(ctx context.Context, rec dbmodels.Applicant) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	id, _ := s.write()
	rec.ID = id
	rec.CreatedAt = time.Now()
	s.Recs[id] = rec
	return id, nil
}

func (s *Applicants) Update(ctx context.Context, id int, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return errNotFound
	}
	s.Writes++
	for key, value := range updMap {
		switch key {
		case "first_name":
			rec.FirstName = value.(string)
		case "last_name":
			rec.LastName = value.(string)
		case "email":
			rec.Email = value.(string)
		case "cover_letter":
			rec.CoverLetter = value.(string)
		case "job_position":
			rec.JobPosition = value.(string)
		case "department_id":
			rec.DepartmentID = value.(int)
		case "date_applied":
			rec.DateApplied = value.(time.Time)
		case "status":
			rec.Status = value.(models.ApplicantStatus)
		case "stage":
			rec.Stage = value.(models.ApplicantStage)
		case "test_rating":
			rec.TestRating = value.(*int)
		case "interview_rating":
			rec.InterviewRating = value.(*int)
		case "total_score":
			rec.TotalScore = value.(*int)
		case "date_processed":
			rec.DateProcessed = value.(*time.Time)
		}
	}
	s.Recs[id] = rec
	return nil
}

func (s *Applicants) GetByID(ctx context.Context, id int) (*dbmodels.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *Applicants) List(ctx context.Context, filter dbmodels.ApplicantFilter) ([]dbmodels.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Applicant{}
	for _, rec := range s.Recs {
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.Stage != "" && rec.Stage != filter.Stage {
			continue
		}
		if filter.DepartmentID != 0 && rec.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.Search != "" {
			text := strings.ToLower(rec.FirstName + " " + rec.LastName + " " + rec.JobPosition + " " + rec.Email)
			if !strings.Contains(text, strings.ToLower(filter.Search)) {
				continue
			}
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Applicants) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.Recs[id]; !ok {
		return errNotFound
	}
	s.Writes++
	delete(s.Recs, id)
	return nil
}

type Departments struct {
	counters
	Recs map[int]dbmodels.Department
	// Delay имитирует медленное хранилище для проверки таймаутов
	Delay time.Duration
}

func NewDepartments(recs ...dbmodels.Department) *Departments {
	s := &Departments{Recs: map[int]dbmodels.Department{}}
	for _, rec := range recs {
		s.Recs[rec.ID] = rec
		if rec.ID > s.nextID {
			s.nextID = rec.ID
		}
	}
	return s
}

func (s *Departments) Create(ctx context.Context, rec dbmodels.Department) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	id, _ := s.write()
	rec.ID = id
	s.Recs[id] = rec
	return id, nil
}

func (s *Departments) GetByID(ctx context.Context, id int) (*dbmodels.Department, error) {
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *Departments) List(ctx context.Context, filter dbmodels.DepartmentFilter) ([]dbmodels.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Department{}
	for _, rec := range s.Recs {
		if filter.Name != "" && !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(filter.Name)) {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *Departments) IsNameTaken(ctx context.Context, name string, selfID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return false, err
	}
	for id, rec := range s.Recs {
		if id != selfID && strings.EqualFold(rec.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Departments) Update(ctx context.Context, id int, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return errNotFound
	}
	s.Writes++
	for key, value := range updMap {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "status":
			rec.Status = value.(models.DepartmentStatus)
		case "date_formed":
			rec.DateFormed = value.(*time.Time)
		case "position_open":
			rec.PositionOpen = value.(bool)
		case "admin_id":
			rec.AdminID = value.(int)
		}
	}
	s.Recs[id] = rec
	return nil
}

func (s *Departments) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.Recs[id]; !ok {
		return errNotFound
	}
	s.Writes++
	delete(s.Recs, id)
	return nil
}

type Jobs struct {
	counters
	Recs map[int]dbmodels.Job
}

func NewJobs() *Jobs {
	return &Jobs{Recs: map[int]dbmodels.Job{}}
}

func (s *Jobs) Create(ctx context.Context, rec dbmodels.Job) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	id, _ := s.write()
	rec.ID = id
	s.Recs[id] = rec
	return id, nil
}

func (s *Jobs) GetByID(ctx context.Context, id int) (*dbmodels.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *Jobs) List(ctx context.Context, filter dbmodels.JobFilter) ([]dbmodels.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.Job{}
	for _, rec := range s.Recs {
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.Posted != nil && rec.Posted != *filter.Posted {
			continue
		}
		if filter.DepartmentID != 0 && rec.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.DeadlineTo != nil && (!rec.Posted || rec.Deadline == nil || !rec.Deadline.Before(*filter.DeadlineTo)) {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Jobs) Update(ctx context.Context, id int, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return errNotFound
	}
	s.Writes++
	for key, value := range updMap {
		switch key {
		case "title":
			rec.Title = value.(string)
		case "department_id":
			rec.DepartmentID = value.(int)
		case "location":
			rec.Location = value.(string)
		case "type":
			rec.Type = value.(string)
		case "description":
			rec.Description = value.(string)
		case "responsibilities":
			rec.Responsibilities = value.(string)
		case "requirements":
			rec.Requirements = value.(string)
		case "preferred_skills":
			rec.PreferredSkills = value.(string)
		case "key_suggestions":
			rec.KeySuggestions = value.(pq.StringArray)
		case "status":
			rec.Status = value.(models.JobStatus)
		case "posted":
			rec.Posted = value.(bool)
		case "deadline":
			rec.Deadline = value.(*time.Time)
		case "team_lead_id":
			rec.TeamLeadID = value.(*int)
		case "admin_id":
			rec.AdminID = value.(*int)
		case "manager_id":
			rec.ManagerID = value.(*int)
		case "hr_id":
			rec.HrID = value.(*int)
		}
	}
	s.Recs[id] = rec
	return nil
}

func (s *Jobs) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.Recs[id]; !ok {
		return errNotFound
	}
	s.Writes++
	delete(s.Recs, id)
	return nil
}

type Users struct {
	counters
	Recs map[int]dbmodels.User
}

func NewUsers(recs ...dbmodels.User) *Users {
	s := &Users{Recs: map[int]dbmodels.User{}}
	for _, rec := range recs {
		s.Recs[rec.ID] = rec
		if rec.ID > s.nextID {
			s.nextID = rec.ID
		}
	}
	return s
}

func (s *Users) Create(ctx context.Context, rec dbmodels.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	id, _ := s.write()
	rec.ID = id
	s.Recs[id] = rec
	return id, nil
}

func (s *Users) GetByID(ctx context.Context, id int) (*dbmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	rec, ok := s.Recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*dbmodels.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	for _, rec := range s.Recs {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

type History struct {
	counters
	Recs []dbmodels.ApplicantHistory
}

func NewHistory() *History {
	return &History{}
}

func (s *History) Create(ctx context.Context, rec dbmodels.ApplicantHistory) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return 0, err
	}
	id, _ := s.write()
	rec.ID = id
	s.Recs = append(s.Recs, rec)
	return id, nil
}

func (s *History) List(ctx context.Context, applicantID int) ([]dbmodels.ApplicantHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	list := []dbmodels.ApplicantHistory{}
	for _, rec := range s.Recs {
		if rec.ApplicantID == applicantID {
			list = append(list, rec)
		}
	}
	return list, nil
}
