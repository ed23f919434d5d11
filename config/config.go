package config

import (
	"time"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruitment-desk" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	// Redis блокировка изменений одной записи между экземплярами сервиса, без адреса - локальная блокировка
	Redis struct {
		URL         string        `default:"" env:"REDIS_URL"`
		LockTTL     time.Duration `default:"10s" env:"REDIS_LOCK_TTL"`
		LockWait    time.Duration `default:"3s" env:"REDIS_LOCK_WAIT"`
		PingTimeout time.Duration `default:"5s" env:"REDIS_PING_TIMEOUT"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"recruitment-desk" env:"S3_BUCKET_NAME"`
		MaxResumeSize   int64  `default:"10485760" env:"S3_MAX_RESUME_SIZE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"SMTP_EMAIL_FROM"` // пусто - письма о решении не отправляются
	}
	// Admin администратор, создаваемый при старте, если его нет
	Admin struct {
		Name  string `default:"Администратор" env:"ADMIN_NAME"`
		Email string `default:"" env:"ADMIN_EMAIL"`
	}
	Recruitment struct {
		DefaultAdminID int           `default:"1" env:"DEFAULT_ADMIN_ID"`
		LookupTimeout  time.Duration `default:"5s" env:"LOOKUP_TIMEOUT"`
	}
	Worker struct {
		DeadlineCron string `default:"5 0 * * *" env:"WORKER_DEADLINE_CRON"`
	}
	// NotifyBot адрес бота для уведомлений об ошибках 5xx, пусто - не отправляются
	NotifyBot struct {
		AddrErr string `default:"" env:"NOTIFY_BOT_ADDR_ERR"`
	}
	Export struct {
		FontDir string `default:"static/font/" env:"EXPORT_FONT_DIR"` // Arial.ttf и "Arial Bold.ttf" для кириллицы в pdf
	}
	Swagger struct {
		FilePath string `default:"./docs/swagger.json" env:"SWAGGER_FILE_PATH"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
