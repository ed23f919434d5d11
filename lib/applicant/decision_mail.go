package applicant

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/models"
	dbmodels "recruitment-desk-backend/models/db"
)

// sendDecision письмо кандидату отправляется в фоне, ошибка только логируется
func (i impl) sendDecision(rec dbmodels.Applicant) {
	if !i.isMailEnabled() || rec.Email == "" {
		return
	}
	subject, message := decisionMail(rec)
	if subject == "" {
		return
	}
	mailer, from := i.mailer, i.mailFrom
	go func() {
		err := mailer.SendEMail(from, rec.Email, message, subject)
		if err != nil {
			log.WithError(err).
				WithField("applicant_id", rec.ID).
				Error("ошибка отправки письма кандидату о решении")
		}
	}()
}

func decisionMail(rec dbmodels.Applicant) (subject, message string) {
	position := "вакансию"
	if rec.JobPosition != "" {
		position = fmt.Sprintf("вакансию «%s»", rec.JobPosition)
	}
	switch rec.Status {
	case models.ApplicantStatusAccepted:
		subject = "Ваш отклик принят к рассмотрению"
		message = fmt.Sprintf("Здравствуйте, %s!\r\n\r\nВаш отклик на %s принят, вы приглашены к следующему этапу отбора. "+
			"Мы свяжемся с вами в ближайшее время.", rec.GetFullName(), position)
	case models.ApplicantStatusRejected:
		subject = "Результат рассмотрения отклика"
		message = fmt.Sprintf("Здравствуйте, %s!\r\n\r\nБлагодарим за интерес к %s. "+
			"К сожалению, сейчас мы не готовы продолжить с вашей кандидатурой.", rec.GetFullName(), position)
	}
	return subject, message
}
