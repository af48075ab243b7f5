package database

import "time"

// Зарегистрированный пользователь бота
type User struct {
	Id         int64 `xorm:"pk autoincr"`
	TgId       int64
	TgUsername string
	Name       string
}

// Учебный предмет (справочник, ботом не изменяется)
type Subject struct {
	SubjectId int64 `xorm:"pk"`
	Name      string
}

type Homework struct {
	HomeworkId  int64 `xorm:"pk autoincr"`
	SubjectId   int64
	Description string
	DueDate     time.Time
	IsCompleted bool
	TgId        int64
}

type Deadline struct {
	DeadlineId int64 `xorm:"pk autoincr"`
	TgId       int64
	Title      string
	DeadlineAt time.Time
	Notified   bool
}

// Занятие в сетке недели. DayOfWeek: 1 - понедельник ... 5 - пятница
type ScheduleEntry struct {
	EntryId     int64 `xorm:"pk"`
	DayOfWeek   int
	PairNumber  int
	Subject     string
	ClassroomId int64
	TeacherId   int64
	WeekType    string // "", "even", "odd"
}

type Classroom struct {
	ClassroomId int64 `xorm:"pk"`
	Number      string
}

type Teacher struct {
	TeacherId int64 `xorm:"pk"`
	Name      string
}

type TimeSlot struct {
	PairNumber int `xorm:"pk"`
	StartTime  string
	EndTime    string
}
