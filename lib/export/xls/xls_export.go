package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
)

type Provider interface {
	ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Кандидаты"

var applicantHeaders = []string{"ФИО", "Емайл", "Подразделение", "Должность", "Дата отклика", "Статус", "Этап",
	"Оценка теста", "Оценка интервью", "Итоговый балл", "Дата рассмотрения"}

func (i impl) ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = writeApplicantData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []applicantapimodels.ApplicantView, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.FullName,
			item.Email,
			item.DepartmentName,
			item.JobPosition,
			formatDate(item.DateApplied),
			string(item.Status),
			string(item.Stage),
			intValue(item.TestRating),
			intValue(item.InterviewRating),
			intValue(item.TotalScore),
			nil,
		}
		if item.DateProcessed != nil {
			values[10] = formatDate(*item.DateProcessed)
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
	}
	return nil
}
