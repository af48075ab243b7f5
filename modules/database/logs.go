package database

import (
	"io"
	"log"
	"os"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
)

type LogFiles struct {
	DBLogFile  io.WriteCloser
	TgLogFile  io.WriteCloser
	DebugFile  io.WriteCloser
	NotifyFile io.WriteCloser
}

// Лог-файл с суточной ротацией в каталоге ./logs
func CreateLog(name string) io.WriteCloser {
	if err := os.MkdirAll("logs", os.ModePerm); err != nil {
		log.Println(err)

		return os.Stderr
	}
	file, err := rotatelogs.New(
		"logs/"+name+".%Y-%m-%d.log",
		rotatelogs.WithLinkName("logs/"+name+".log"),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithMaxAge(14*24*time.Hour),
	)
	if err != nil {
		log.Println(err)

		return os.Stderr
	}

	return file
}

func OpenLogs() LogFiles {
	return LogFiles{
		DBLogFile:  CreateLog("db"),
		TgLogFile:  CreateLog("tg"),
		DebugFile:  CreateLog("messages"),
		NotifyFile: CreateLog("notify"),
	}
}

func (files *LogFiles) CloseAll() {
	for _, f := range []io.WriteCloser{
		files.DBLogFile,
		files.TgLogFile,
		files.DebugFile,
		files.NotifyFile,
	} {
		if f != os.Stderr {
			f.Close()
		}
	}
}
