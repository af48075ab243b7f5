package tg

import (
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"stud.group321.ru/bot/modules/session"
)

// Единое представление входящего события:
// текст сообщения либо токен нажатой кнопки
type Incoming struct {
	UserID   int64
	Username string
	Text     string
	Token    string
	Now      time.Time
	Query    *tgbotapi.CallbackQuery
}

type handler func(bot *Bot, in *Incoming) error

type callbackRoute struct {
	inState bool // кнопка значима только в состоянии state
	state   session.Tag
	fn      handler
}

var commandRoutes = map[string]handler{
	"start":     (*Bot).cmdStart,
	"hw":        (*Bot).cmdHomework,
	"schedule":  (*Bot).cmdSchedule,
	"deadlines": (*Bot).cmdDeadlines,
	"help":      (*Bot).cmdHelp,
}

var callbackExact = map[string]callbackRoute{
	"registration": {fn: (*Bot).registrationTapped},
	"right":        {fn: (*Bot).confirmTapped},
	"fix":          {fn: (*Bot).fixTapped},
	"add_hw":       {inState: true, state: ChoosingAction, fn: (*Bot).addHomeworkChosen},
	"view_hw":      {inState: true, state: ChoosingAction, fn: (*Bot).viewHomeworkChosen},
	"create":       {fn: (*Bot).createDeadlineTapped},
	"check_list":   {fn: (*Bot).listDeadlinesTapped},
	"monday":       {fn: (*Bot).monday},
	"tuesday":      {fn: (*Bot).tuesday},
	"wednesday":    {fn: (*Bot).wednesday},
	"thursday":     {fn: (*Bot).thursday},
	"friday":       {fn: (*Bot).friday},
}

var callbackPrefix = []struct {
	prefix string
	route  callbackRoute
}{
	{"lang-", callbackRoute{fn: (*Bot).languageChosen}},
	{"view_subject_", callbackRoute{inState: true, state: ViewingHomework, fn: (*Bot).showHomework}},
	{"subject_", callbackRoute{inState: true, state: SelectingSubject, fn: (*Bot).subjectChosen}},
}

// Свободный текст осмыслен только внутри шага диалога
var textRoutes = map[session.Tag]handler{
	AwaitingName:    (*Bot).nameEntered,
	EnteringTask:    (*Bot).taskEntered,
	EnteringDueDate: (*Bot).dueDateEntered,
	EnteringDate:    (*Bot).dateEntered,
	EnteringTime:    (*Bot).timeEntered,
	EnteringTitle:   (*Bot).titleEntered,
}

// Маршрутизация одного события. Ошибки шагов не выходят за его пределы:
// пользователю уходит общий ответ, сессия откатывается в безопасное состояние
func (bot *Bot) HandleUpdate(update tgbotapi.Update, now ...time.Time) error {
	when := time.Now()
	if len(now) > 0 {
		when = now[0]
	}

	if update.Message != nil {
		msg := update.Message
		in := &Incoming{
			UserID:   msg.From.ID,
			Username: msg.From.UserName,
			Text:     msg.Text,
			Now:      when,
		}
		bot.Messages++
		bot.Debug.Printf("Message [%d] <%s> %s", in.UserID, in.Username, in.Text)

		if cmd := command(msg.Text); cmd != "" {
			if fn, ok := commandRoutes[cmd]; ok {
				return bot.step(in, fn)
			}

			return bot.cmdHelp(in)
		}
		if fn, ok := textRoutes[bot.Sessions.State(in.UserID)]; ok {
			return bot.step(in, fn)
		}

		return bot.etc(in)
	}

	if update.CallbackQuery != nil {
		query := update.CallbackQuery
		in := &Incoming{
			UserID:   query.From.ID,
			Username: query.From.UserName,
			Token:    query.Data,
			Now:      when,
			Query:    query,
		}
		bot.Callbacks++
		bot.Debug.Printf("Callback [%d] <%s> %s", in.UserID, in.Username, in.Token)

		// Убираем "часики" на кнопке
		callback := tgbotapi.NewCallback(query.ID, "")
		if _, err := bot.TG.Request(callback); err != nil {
			bot.Debug.Println(err)
		}

		if route, ok := matchCallback(in.Token); ok {
			if route.inState && bot.Sessions.State(in.UserID) != route.state {
				return nil
			}

			return bot.step(in, route.fn)
		}
	}

	return nil
}

func matchCallback(token string) (callbackRoute, bool) {
	if route, ok := callbackExact[token]; ok {
		return route, true
	}
	for _, p := range callbackPrefix {
		if strings.HasPrefix(token, p.prefix) {
			return p.route, true
		}
	}

	return callbackRoute{}, false
}

// Один шаг диалога. Провал шага не должен запереть пользователя:
// сессия сбрасывается туда, откуда диалог можно начать заново
func (bot *Bot) step(in *Incoming, fn handler) error {
	err := fn(bot, in)
	if err != nil {
		safe := Idle
		if beforeRegistration(bot.Sessions.State(in.UserID)) {
			safe = session.None
		}
		bot.Sessions.SetState(in.UserID, safe)
		if _, sendErr := bot.SendMsg(in.UserID, errorTxt, nil); sendErr != nil {
			bot.Debug.Println(sendErr)
		}
	}

	return err
}

func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.TrimPrefix(strings.Fields(text)[0], "/")
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}

	return cmd
}

func (bot *Bot) etc(in *Incoming) error {
	_, err := bot.SendMsg(in.UserID, "Не понимаю. Список команд: /help", nil)

	return err
}
