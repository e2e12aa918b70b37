package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер с уровнем logLevel. format "text" включает человекочитаемый вывод,
// любое другое значение даёт JSON.
func New(logLevel, format string) *logrus.Logger {
	return newWithOutput(os.Stdout, logLevel, format)
}

func newWithOutput(out io.Writer, logLevel, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
