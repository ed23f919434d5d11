package smtp

import (
	"fmt"
	"mime"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
}

const subjectPrefix = "Recruitment Desk"

// Connect без хоста или пользователя Instance остается nil и письма не отправляются
func Connect(user, password, host, port string, tlsEnabled bool) {
	if user == "" || host == "" || port == "" {
		log.Warn("smtp клиент не настроен, письма кандидатам отправляться не будут")
		Instance = nil
		return
	}
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.WithField("sender", from).WithField("subject", subject)
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(BuildMessage(from, to, subject, message))
	addr := i.host + ":" + i.port
	if i.tlsEnabled {
		err = smtp.SendMailTLS(addr, auth, i.user, []string{to}, body)
	} else {
		err = smtp.SendMail(addr, auth, i.user, []string{to}, body)
	}
	if err != nil {
		return errors.Wrap(err, "Ошибка отправки сообщения")
	}
	logger.Info("письмо отправлено")
	return nil
}

// BuildMessage письмо в формате RFC 5322, тема в кодировке UTF-8
func BuildMessage(from, to, subject, message string) string {
	header := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("utf-8", subjectPrefix+" - "+subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}
	return strings.Join(header, "\r\n") + "\r\n\r\n" + message + "\r\n"
}
