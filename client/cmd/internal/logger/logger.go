package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/odpf/salt/log"
	"github.com/sirupsen/logrus"

	"github.com/odpf/shelflife/config"
)

type defaultLogger struct {
	writer   io.Writer
	level    logrus.Level
	exitFunc func(int)
}

func (d defaultLogger) Debug(msg string, args ...interface{}) {
	c := color.New(color.FgWhite)
	d.write(logrus.DebugLevel, c, msg, args...)
}

func (d defaultLogger) Info(msg string, args ...interface{}) {
	c := color.New(color.FgWhite)
	d.write(logrus.InfoLevel, c, msg, args...)
}

func (d defaultLogger) Warn(msg string, args ...interface{}) {
	c := color.New(color.FgYellow)
	d.write(logrus.WarnLevel, c, msg, args...)
}

func (d defaultLogger) Error(msg string, args ...interface{}) {
	c := color.New(color.FgRed)
	d.write(logrus.ErrorLevel, c, msg, args...)
}

func (d defaultLogger) Fatal(msg string, args ...interface{}) {
	c := color.New(color.FgRed)
	d.write(logrus.FatalLevel, c, msg, args...)
	d.exitFunc(1)
}

func (d defaultLogger) Level() string {
	return d.level.String()
}

func (d defaultLogger) Writer() io.Writer {
	return d.writer
}

func (d defaultLogger) write(level logrus.Level, c *color.Color, msg string, args ...interface{}) {
	if level > d.level {
		return
	}
	plainMessage := fmt.Sprintf(msg, args...)
	c.Fprintln(d.writer, plainMessage)
}

type jsonLogger struct {
	logger *log.Logrus
}

func (j jsonLogger) Debug(msg string, args ...interface{}) {
	j.logger.Debug(fmt.Sprintf(msg, args...))
}

func (j jsonLogger) Info(msg string, args ...interface{}) {
	j.logger.Info(fmt.Sprintf(msg, args...))
}

func (j jsonLogger) Warn(msg string, args ...interface{}) {
	j.logger.Warn(fmt.Sprintf(msg, args...))
}

func (j jsonLogger) Error(msg string, args ...interface{}) {
	j.logger.Error(fmt.Sprintf(msg, args...))
}

func (j jsonLogger) Fatal(msg string, args ...interface{}) {
	j.logger.Fatal(fmt.Sprintf(msg, args...))
}

func (j jsonLogger) Level() string {
	return j.logger.Level()
}

func (j jsonLogger) Writer() io.Writer {
	return j.logger.Writer()
}

// NewClientLoggerWithWriter initializes client logger based on log configuration
func NewClientLoggerWithWriter(logConfig config.LogConfig, writer io.Writer) log.Logger {
	level, err := logrus.ParseLevel(logConfig.Level.String())
	if err != nil {
		level = logrus.InfoLevel
	}

	if logConfig.Format == config.LogFormatJSON {
		return &jsonLogger{
			logger: log.NewLogrus(
				log.LogrusWithLevel(level.String()),
				log.LogrusWithWriter(writer),
				log.LogrusWithFormatter(&logrus.JSONFormatter{}),
			),
		}
	}
	return &defaultLogger{
		writer:   writer,
		level:    level,
		exitFunc: os.Exit,
	}
}
