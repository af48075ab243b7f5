package tg

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"stud.group321.ru/bot/modules/database"
)

// Приветствие и выбор языка
func (bot *Bot) cmdStart(in *Incoming) error {
	_, err := bot.SendMsg(in.UserID, "Choose language.", languageKeyboard())

	return err
}

var knownLangs = []string{"ru_RU", "en_US"}

// Язык запоминается в сессии, дальше предлагаем регистрацию
func (bot *Bot) languageChosen(in *Incoming) error {
	lang := strings.TrimPrefix(in.Token, "lang-")
	if !slices.Contains(knownLangs, lang) {
		lang = "ru_RU"
	}
	bot.Sessions.UpdateData(in.UserID, map[string]string{"lang": lang})

	if _, err := bot.SendMsg(in.UserID, "Отлично, вы выбрали лучший язык в мире!", nil); err != nil {
		return err
	}
	_, err := bot.SendMsg(
		in.UserID,
		"Привет! Я бот 321 группы. Для начала необходимо зарегестрироваться.",
		registrationKeyboard(),
	)

	return err
}

// Старт регистрации. Если пользователь уже есть, имя заново не спрашиваем,
// а предлагаем подтвердить или отредактировать старую запись
func (bot *Bot) registrationTapped(in *Incoming) error {
	user, err := database.UserByTgID(bot.DB, in.UserID)
	if err != nil {
		return err
	}
	if user != nil {
		_, err = bot.SendMsg(
			in.UserID,
			fmt.Sprintf("Вы уже зарегестрированы со следующими данными.\n\nФИО: %s", user.Name),
			checkKeyboard(),
		)

		return err
	}
	if _, err = bot.SendMsg(in.UserID, "Введите ваше ФИО:", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, AwaitingName)

	return nil
}

// Подтверждение старых данных. Запись не переписывается
func (bot *Bot) confirmTapped(in *Incoming) error {
	if _, err := bot.SendMsg(in.UserID, "Отлично!", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, Idle)

	return nil
}

// Редактирование: старая запись удаляется, регистрация с самого начала
func (bot *Bot) fixTapped(in *Incoming) error {
	if err := database.DeleteUserByTgID(bot.DB, in.UserID); err != nil {
		return err
	}
	if _, err := bot.SendMsg(in.UserID, "Введите ваше ФИО:", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, AwaitingName)

	return nil
}

func (bot *Bot) nameEntered(in *Incoming) error {
	name := strings.TrimSpace(in.Text)
	if name == "" {
		_, err := bot.SendMsg(in.UserID, "Введите ваше ФИО:", nil)

		return err
	}
	if _, err := bot.DB.Insert(&database.User{
		TgId:       in.UserID,
		TgUsername: in.Username,
		Name:       name,
	}); err != nil {
		return err
	}
	if _, err := bot.SendMsg(in.UserID, "Отлично!", nil); err != nil {
		return err
	}
	bot.Sessions.SetState(in.UserID, Idle)

	return nil
}

const helpTxt = "/schedule - просмотр расписания,\n" +
	"/deadlines - добавить/просмотреть дедлайны\n" +
	"/hw - домашнее задание"

func (bot *Bot) cmdHelp(in *Incoming) error {
	_, err := bot.SendMsg(in.UserID, helpTxt, nil)

	return err
}
