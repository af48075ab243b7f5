package tg

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"xorm.io/xorm"

	"stud.group321.ru/bot/modules/database"
	"stud.group321.ru/bot/modules/session"
)

// Транспорт Telegram. *tgbotapi.BotAPI реализует интерфейс,
// в тестах вместо него используется запись сообщений в память
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	TG        Sender
	DB        *xorm.Engine
	Sessions  *session.Store
	Location  *time.Location
	Debug     *log.Logger
	Updates   *tgbotapi.UpdatesChannel
	Messages  int64
	Callbacks int64
}

var envKeys = []string{
	"TELEGRAM_APITOKEN",
	"MYSQL_USER",
	"MYSQL_PASS",
	"MYSQL_DB",
	"API_ADDR",
	"TZ_NAME",
}

func CheckEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found")
	}
	for _, key := range envKeys {
		if _, exists := os.LookupEnv(key); !exists {
			return fmt.Errorf("lost env key: %s", key)
		}
	}

	return nil
}

// Полная инициализация бота со стороны Telegram и БД
func InitBot(files database.LogFiles, db database.DB, token string) (*Bot, error) {
	var bot Bot
	engine, err := database.Connect(db, files.DBLogFile)
	if err != nil {
		return nil, err
	}
	bot.DB = engine
	bot.Sessions = session.NewStore()

	bot.Location, err = time.LoadLocation(os.Getenv("TZ_NAME"))
	if err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	logger := log.New(files.TgLogFile, "", log.LstdFlags)
	if err = tgbotapi.SetLogger(logger); err != nil {
		return nil, err
	}
	bot.TG = api

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	bot.Updates = &updates

	log.Printf("Authorized on account %s", api.Self.UserName)
	bot.Debug = log.New(io.MultiWriter(os.Stderr, files.DebugFile), "", log.LstdFlags)

	return &bot, nil
}

func (bot *Bot) SendMsg(chatID int64, text string, markup interface{}) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	return bot.TG.Send(msg)
}

// Редактирование сообщения, из которого пришла кнопка,
// либо отправка нового, если редактировать нечего
func (bot *Bot) EditOrSend(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup, editMsg *tgbotapi.Message) error {
	if editMsg == nil {
		var err error
		if len(markup.InlineKeyboard) != 0 {
			_, err = bot.SendMsg(chatID, text, markup)
		} else {
			_, err = bot.SendMsg(chatID, text, nil)
		}

		return err
	}
	msg := tgbotapi.NewEditMessageText(editMsg.Chat.ID, editMsg.MessageID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(markup.InlineKeyboard) != 0 {
		msg.ReplyMarkup = &markup
	}
	_, err := bot.TG.Request(msg)

	return err
}
