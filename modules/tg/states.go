package tg

import "stud.group321.ru/bot/modules/session"

// Метки шагов диалогов. Три машины: регистрация, ДЗ и дедлайны,
// у пользователя активна не более одной
const (
	// Регистрация
	AwaitingName session.Tag = "awaiting_name"
	Idle         session.Tag = "registered_idle"

	// Домашние задания
	ChoosingAction   session.Tag = "choosing_action"
	SelectingSubject session.Tag = "selecting_subject"
	EnteringTask     session.Tag = "entering_task"
	EnteringDueDate  session.Tag = "entering_due_date"
	ViewingHomework  session.Tag = "viewing_homework"

	// Дедлайны
	EnteringDate  session.Tag = "entering_date"
	EnteringTime  session.Tag = "entering_time"
	EnteringTitle session.Tag = "entering_title"
)

// Состояния, из которых регистрация ещё не пройдена:
// после сбоя на этих шагах откатываемся в самое начало
func beforeRegistration(tag session.Tag) bool {
	return tag == session.None || tag == AwaitingName
}
