package tg

import (
	"fmt"
	"strings"

	"github.com/icza/gox/timex"

	"stud.group321.ru/bot/modules/database"
)

// Выбор дня недели для просмотра расписания
func (bot *Bot) cmdSchedule(in *Incoming) error {
	_, err := bot.SendMsg(in.UserID, "Выбери день недели", daysKeyboard())

	return err
}

func (bot *Bot) monday(in *Incoming) error    { return bot.showDay(in, 1) }
func (bot *Bot) tuesday(in *Incoming) error   { return bot.showDay(in, 2) }
func (bot *Bot) wednesday(in *Incoming) error { return bot.showDay(in, 3) }
func (bot *Bot) thursday(in *Incoming) error  { return bot.showDay(in, 4) }
func (bot *Bot) friday(in *Incoming) error    { return bot.showDay(in, 5) }

// Расписание на день: сетка занятий, подтянутые кабинеты, слоты и
// преподаватели. Отсутствующая справочная запись не роняет выдачу
func (bot *Bot) showDay(in *Incoming, day int) error {
	entries, err := database.DaySchedule(bot.DB, day)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err = bot.SendMsg(in.UserID, "В этот день нет пар.", nil)

		return err
	}

	_, err = bot.SendMsg(in.UserID, bot.formatDay(in, day, entries), nil)

	return err
}

func (bot *Bot) formatDay(in *Incoming, day int, entries []database.ScheduleEntry) string {
	var text strings.Builder
	text.WriteString(fmt.Sprintf("<b>Расписание на %s (%s)</b>", weekdays[day-1], dayDate(in, day)))

	for _, e := range entries {
		text.WriteString(fmt.Sprintf("\n\n<b>%s</b>%s", pairTime(bot, e.PairNumber), weekMark(e.WeekType)))
		text.WriteString(fmt.Sprintf("\nПредмет: <b>%s</b>", e.Subject))
		text.WriteString(fmt.Sprintf("\nКабинет: <b>%s</b>", classroomNumber(bot, e.ClassroomId)))
		if e.TeacherId != 0 {
			if teacher, _ := database.TeacherByID(bot.DB, e.TeacherId); teacher != nil {
				text.WriteString(fmt.Sprintf("\nПреподаватель: %s", teacher.Name))
			}
		}
	}

	return text.String()
}

// Календарная дата дня недели на текущей неделе
func dayDate(in *Incoming, day int) string {
	year, week := in.Now.ISOWeek()

	return timex.WeekStart(year, week).AddDate(0, 0, day-1).Format("02.01")
}

func pairTime(bot *Bot, pairNumber int) string {
	slot, _ := database.SlotByPair(bot.DB, pairNumber)
	if slot == nil {
		return "??:?? - ??:??"
	}

	return fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime)
}

func classroomNumber(bot *Bot, classroomID int64) string {
	room, _ := database.ClassroomByID(bot.DB, classroomID)
	if room == nil {
		return "неизвестно"
	}

	return room.Number
}

func weekMark(weekType string) string {
	switch weekType {
	case "even":
		return " чётные недели"
	case "odd":
		return " нечётные недели"
	default:
		return ""
	}
}
