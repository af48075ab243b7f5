package tg

import (
	"fmt"
	"strconv"
	"strings"

	"stud.group321.ru/bot/modules/database"
)

// Подменю ДЗ. Доступно только после регистрации
func (bot *Bot) cmdHomework(in *Incoming) error {
	if bot.Sessions.State(in.UserID) != Idle {
		_, err := bot.SendMsg(in.UserID, "Сначала нужно зарегистрироваться: /start", nil)

		return err
	}
	if _, err := bot.SendMsg(in.UserID, "Выберите действие:", homeworkKeyboard()); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, ChoosingAction)

	return nil
}

// Добавление ДЗ: сначала выбор предмета из справочника
func (bot *Bot) addHomeworkChosen(in *Incoming) error {
	subjects, err := database.Subjects(bot.DB)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		if _, err = bot.SendMsg(in.UserID, "В базе нет предметов.", nil); err != nil {
			return err
		}
		bot.Sessions.SetState(in.UserID, Idle)

		return nil
	}
	if _, err = bot.SendMsg(in.UserID, "Выберите предмет:", subjectsKeyboard(subjects, "subject_", 2)); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, SelectingSubject)

	return nil
}

func (bot *Bot) subjectChosen(in *Incoming) error {
	subjectID, err := strconv.ParseInt(strings.TrimPrefix(in.Token, "subject_"), 10, 64)
	if err != nil {
		return fmt.Errorf("wrong button format: %s", in.Token)
	}
	subject, err := database.SubjectByID(bot.DB, subjectID)
	if err != nil {
		return err
	}
	name := "неизвестный предмет"
	if subject != nil {
		name = subject.Name
	}
	bot.Sessions.UpdateData(in.UserID, map[string]string{"subject_id": strconv.FormatInt(subjectID, 10)})

	if _, err = bot.SendMsg(in.UserID, fmt.Sprintf("Выбран предмет: %s", name), nil); err != nil {
		return err
	}
	if _, err = bot.SendMsg(in.UserID, "Введите задание:", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, EnteringTask)

	return nil
}

func (bot *Bot) taskEntered(in *Incoming) error {
	bot.Sessions.UpdateData(in.UserID, map[string]string{"task": in.Text})
	if _, err := bot.SendMsg(in.UserID, "Введите дедлайн в формате ДД.ММ.ГГГГ", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, EnteringDueDate)

	return nil
}

// Последний шаг добавления ДЗ. Неверная или прошедшая дата
// не двигает диалог: пользователь пробует ещё раз на том же шаге
func (bot *Bot) dueDateEntered(in *Incoming) error {
	date, err := parseDueDate(in.Text)
	if err != nil {
		_, err = bot.SendMsg(in.UserID, "Неверный формат даты! Введите в формате ДД.ММ.ГГГГ:", nil)

		return err
	}
	if beforeToday(date, in.Now) {
		_, err = bot.SendMsg(in.UserID, "Дедлайн не может быть в прошлом! Введите корректную дату:", nil)

		return err
	}

	data := bot.Sessions.GetData(in.UserID)
	subjectID, err := strconv.ParseInt(data["subject_id"], 10, 64)
	if err != nil {
		return fmt.Errorf("lost subject_id in session: %w", err)
	}
	if _, err = bot.DB.Insert(&database.Homework{
		SubjectId:   subjectID,
		Description: data["task"],
		DueDate:     date,
		IsCompleted: false,
		TgId:        in.UserID,
	}); err != nil {
		return err
	}
	if _, err = bot.SendMsg(in.UserID, "ДЗ успешно добавлено!", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, Idle)

	return nil
}

// Просмотр ДЗ: выбор предмета, записи не изменяются
func (bot *Bot) viewHomeworkChosen(in *Incoming) error {
	subjects, err := database.Subjects(bot.DB)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		if _, err = bot.SendMsg(in.UserID, "В базе нет предметов.", nil); err != nil {
			return err
		}
		bot.Sessions.SetState(in.UserID, Idle)

		return nil
	}
	markup := subjectsKeyboard(subjects, "view_subject_", 1)
	if _, err = bot.SendMsg(in.UserID, "Выберите предмет для просмотра ДЗ:", markup); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, ViewingHomework)

	return nil
}

func (bot *Bot) showHomework(in *Incoming) error {
	subjectID, err := strconv.ParseInt(strings.TrimPrefix(in.Token, "view_subject_"), 10, 64)
	if err != nil {
		return fmt.Errorf("wrong button format: %s", in.Token)
	}
	subject, err := database.SubjectByID(bot.DB, subjectID)
	if err != nil {
		return err
	}
	name := "неизвестный предмет"
	if subject != nil {
		name = subject.Name
	}

	homework, err := database.HomeworkBySubject(bot.DB, subjectID)
	if err != nil {
		return err
	}
	if len(homework) == 0 {
		if _, err = bot.SendMsg(in.UserID, fmt.Sprintf("По предмету %s нет домашних заданий.", name), nil); err != nil {
			return err
		}
		bot.Sessions.SetState(in.UserID, Idle)

		return nil
	}

	var list strings.Builder
	for _, hw := range homework {
		list.WriteString(fmt.Sprintf("Описание задания: %s\n", hw.Description))
		list.WriteString(fmt.Sprintf("Дедлайн: %s\n\n", hw.DueDate.Format("02.01.2006")))
	}
	text := fmt.Sprintf("Домашние задания по предмету %s:\n\n%s", name, list.String())
	if _, err = bot.SendMsg(in.UserID, text, nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, Idle)

	return nil
}
