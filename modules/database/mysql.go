package database

import (
	"io"

	_ "github.com/go-sql-driver/mysql"
	"xorm.io/xorm"
	xlog "xorm.io/xorm/log"
	"xorm.io/xorm/names"
)

type DB struct {
	User   string
	Pass   string
	Schema string
}

// Подключение к БД и синхронизация всех таблиц
func Connect(db DB, logFile io.Writer) (*xorm.Engine, error) {
	engine, err := xorm.NewEngine(
		"mysql",
		db.User+":"+db.Pass+"@tcp(localhost:3306)/"+db.Schema+"?charset=utf8&parseTime=true",
	)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(xlog.NewSimpleLogger(logFile))
	engine.ShowSQL(true)
	engine.SetMapper(names.SameMapper{})

	if err = Sync(engine); err != nil {
		return nil, err
	}

	return engine, nil
}

func Sync(engine *xorm.Engine) error {
	return engine.Sync(
		&User{},
		&Subject{},
		&Homework{},
		&Deadline{},
		&ScheduleEntry{},
		&Classroom{},
		&Teacher{},
		&TimeSlot{},
	)
}
