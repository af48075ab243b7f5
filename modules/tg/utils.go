package tg

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"stud.group321.ru/bot/modules/database"
)

const errorTxt = "Произошла ошибка, попробуйте ещё раз"

var nilKey = tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}

// Разбивка списка кнопок в ряды по perRow штук
func splitRows(buttons []tgbotapi.InlineKeyboardButton, perRow int) tgbotapi.InlineKeyboardMarkup {
	var markup [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, b := range buttons {
		row = append(row, b)
		if len(row) >= perRow {
			markup = append(markup, row)
			row = nil
		}
	}
	if len(row) > 0 {
		markup = append(markup, row)
	}

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: markup}
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return splitRows([]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Русский", "lang-ru_RU"),
		tgbotapi.NewInlineKeyboardButtonData("English", "lang-en_US"),
	}, 2)
}

func registrationKeyboard() tgbotapi.InlineKeyboardMarkup {
	return splitRows([]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Регистрация", "registration"),
	}, 1)
}

func checkKeyboard() tgbotapi.InlineKeyboardMarkup {
	return splitRows([]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Всё верно", "right"),
		tgbotapi.NewInlineKeyboardButtonData("Редактировать", "fix"),
	}, 2)
}

func homeworkKeyboard() tgbotapi.InlineKeyboardMarkup {
	return splitRows([]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Добавить ДЗ", "add_hw"),
		tgbotapi.NewInlineKeyboardButtonData("Посмотреть ДЗ", "view_hw"),
	}, 1)
}

func deadlinesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return splitRows([]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("Создать", "create"),
		tgbotapi.NewInlineKeyboardButtonData("Посмотреть список", "check_list"),
	}, 2)
}

// Кнопки предметов с токенами вида prefix<id>
func subjectsKeyboard(subjects []database.Subject, prefix string, perRow int) tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, s := range subjects {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			s.Name,
			fmt.Sprintf("%s%d", prefix, s.SubjectId),
		))
	}

	return splitRows(buttons, perRow)
}

var weekdays = []string{
	"понедельник",
	"вторник",
	"среда",
	"четверг",
	"пятница",
}

func daysKeyboard() tgbotapi.InlineKeyboardMarkup {
	tokens := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	titles := []string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница"}
	var buttons []tgbotapi.InlineKeyboardButton
	for i := range tokens {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(titles[i], tokens[i]))
	}

	return splitRows(buttons, 1)
}

// Дата дедлайна ДЗ, строго ДД.ММ.ГГГГ
func parseDueDate(text string) (time.Time, error) {
	return time.Parse("02.01.2006", text)
}

// Сравнение по календарной дате, без учёта времени суток
func beforeToday(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())

	return date.Before(today)
}
