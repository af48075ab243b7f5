package tg

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"stud.group321.ru/bot/modules/database"
)

// Подменю дедлайнов: создать или посмотреть список
func (bot *Bot) cmdDeadlines(in *Incoming) error {
	_, err := bot.SendMsg(
		in.UserID,
		"Здесь можно настроить или узнать текущие дедлайны. Выберите действие:",
		deadlinesKeyboard(),
	)

	return err
}

// Начало ввода. Сообщение с кнопками превращается в приглашение,
// нового сообщения не появляется
func (bot *Bot) createDeadlineTapped(in *Incoming) error {
	var editMsg *tgbotapi.Message
	if in.Query != nil {
		editMsg = in.Query.Message
	}
	if err := bot.EditOrSend(in.UserID, "Введите дату дедлайна в формате YYYY-MM-DD", nilKey, editMsg); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, EnteringDate)

	return nil
}

// Дата и время собираются двумя отдельными шагами,
// ошибка разбора возвращает только на свой шаг
func (bot *Bot) dateEntered(in *Incoming) error {
	if _, err := time.Parse("2006-01-02", in.Text); err != nil {
		_, err = bot.SendMsg(in.UserID, "Неверный формат. Введите дату как YYYY-MM-DD", nil)

		return err
	}
	bot.Sessions.UpdateData(in.UserID, map[string]string{"date": in.Text})
	if _, err := bot.SendMsg(in.UserID, "Теперь введите время дедлайна в формате HH:MM", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, EnteringTime)

	return nil
}

func (bot *Bot) timeEntered(in *Incoming) error {
	if _, err := time.Parse("15:04", in.Text); err != nil {
		_, err = bot.SendMsg(in.UserID, "Неверный формат. Введите время как HH:MM", nil)

		return err
	}
	bot.Sessions.UpdateData(in.UserID, map[string]string{"time": in.Text})
	if _, err := bot.SendMsg(in.UserID, "Теперь введите название дедлайна", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, EnteringTitle)

	return nil
}

// Последний шаг: дата и время складываются в одну отметку
// в московском времени, запись уходит в БД
func (bot *Bot) titleEntered(in *Incoming) error {
	data := bot.Sessions.GetData(in.UserID)
	due, err := time.ParseInLocation("2006-01-02 15:04", data["date"]+" "+data["time"], bot.Location)
	if err != nil {
		return fmt.Errorf("lost date or time in session: %w", err)
	}
	title := in.Text

	if _, err = bot.DB.Insert(&database.Deadline{
		TgId:       in.UserID,
		Title:      title,
		DeadlineAt: due,
		Notified:   false,
	}); err != nil {
		return err
	}
	text := fmt.Sprintf("Дедлайн «%s» добавлен на %s (МСК)", title, due.Format("02.01.2006 15:04"))
	if _, err = bot.SendMsg(in.UserID, text, nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, Idle)

	return nil
}

// Список будущих дедлайнов, ближайшие первыми. Ничего не изменяет
func (bot *Bot) listDeadlinesTapped(in *Incoming) error {
	deadlines, err := database.FutureDeadlines(bot.DB, in.UserID, in.Now)
	if err != nil {
		return err
	}
	if len(deadlines) == 0 {
		_, err = bot.SendMsg(in.UserID, "У вас пока нет активных дедлайнов!", nil)

		return err
	}

	var text strings.Builder
	text.WriteString("<b>Ваши дедлайны:</b>\n\n")
	for i, d := range deadlines {
		text.WriteString(fmt.Sprintf(
			"%d. <b>%s</b>\n   └ %s\n\n",
			i+1,
			d.Title,
			d.DeadlineAt.Format("02.01.2006 15:04"),
		))
	}
	_, err = bot.SendMsg(in.UserID, text.String(), nil)

	return err
}
