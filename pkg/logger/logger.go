package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте приложения (и в TestMain тестов).
func Init() {
	Log = logrus.New()

	// Уровень логирования берем из окружения; по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для продакшена и сбора логов, "text" - для разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// WithComponent возвращает entry с меткой подсистемы.
// По полю component удобно фильтровать логи при отладке.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
