package database

import (
	"time"

	"xorm.io/xorm"
)

// Получение пользователя по идентификатору Telegram
func UserByTgID(db *xorm.Engine, tgID int64) (*User, error) {
	user := User{TgId: tgID}
	has, err := db.Get(&user)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	return &user, nil
}

func DeleteUserByTgID(db *xorm.Engine, tgID int64) error {
	_, err := db.Delete(&User{TgId: tgID})

	return err
}

func Subjects(db *xorm.Engine) ([]Subject, error) {
	var subjects []Subject
	err := db.OrderBy("SubjectId").Find(&subjects)

	return subjects, err
}

func SubjectByID(db *xorm.Engine, subjectID int64) (*Subject, error) {
	subject := Subject{SubjectId: subjectID}
	has, err := db.Get(&subject)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	return &subject, nil
}

// ДЗ по предмету, ближайшие дедлайны первыми.
// Совпадающие даты идут в порядке создания записей
func HomeworkBySubject(db *xorm.Engine, subjectID int64) ([]Homework, error) {
	var homework []Homework
	err := db.Where("SubjectId = ?", subjectID).OrderBy("DueDate, HomeworkId").Find(&homework)

	return homework, err
}

// Будущие дедлайны пользователя, ближайшие первыми.
// Совпадающие времена идут в порядке создания записей
func FutureDeadlines(db *xorm.Engine, tgID int64, now time.Time) ([]Deadline, error) {
	var deadlines []Deadline
	err := db.Where("TgId = ? AND DeadlineAt > ?", tgID, now).
		OrderBy("DeadlineAt, DeadlineId").
		Find(&deadlines)

	return deadlines, err
}

// Дедлайны, по которым ещё не было напоминания.
// Уже прошедшие намеренно не попадают в выборку
func PendingDeadlines(db *xorm.Engine, now time.Time) ([]Deadline, error) {
	var deadlines []Deadline
	err := db.Where("Notified = ? AND DeadlineAt > ?", false, now).Find(&deadlines)

	return deadlines, err
}

// Установка флага напоминания. Обратно флаг никогда не снимается
func MarkNotified(db *xorm.Engine, deadlineID int64) error {
	_, err := db.ID(deadlineID).Cols("Notified").Update(&Deadline{Notified: true})

	return err
}

func DaySchedule(db *xorm.Engine, day int) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	err := db.Where("DayOfWeek = ?", day).OrderBy("PairNumber").Find(&entries)

	return entries, err
}

func ClassroomByID(db *xorm.Engine, classroomID int64) (*Classroom, error) {
	room := Classroom{ClassroomId: classroomID}
	has, err := db.Get(&room)
	if err != nil || !has {
		return nil, err
	}

	return &room, nil
}

func TeacherByID(db *xorm.Engine, teacherID int64) (*Teacher, error) {
	teacher := Teacher{TeacherId: teacherID}
	has, err := db.Get(&teacher)
	if err != nil || !has {
		return nil, err
	}

	return &teacher, nil
}

func SlotByPair(db *xorm.Engine, pairNumber int) (*TimeSlot, error) {
	slot := TimeSlot{PairNumber: pairNumber}
	has, err := db.Get(&slot)
	if err != nil || !has {
		return nil, err
	}

	return &slot, nil
}
