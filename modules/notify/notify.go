// Напоминания о дедлайнах. Воркер сам ничего не планирует:
// один проход Run вызывается снаружи раз в минуту
package notify

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"xorm.io/xorm"

	"stud.group321.ru/bot/modules/database"
	"stud.group321.ru/bot/modules/tg"
)

// Окно напоминания перед дедлайном. Совпадает с периодом опроса,
// поэтому при штатной работе ни один дедлайн не проскакивает между проходами
const LookAhead = time.Minute

type Worker struct {
	TG       tg.Sender
	DB       *xorm.Engine
	Location *time.Location
	Log      *log.Logger
}

// Один проход: найти дедлайны, входящие в окно, напомнить владельцу
// и поднять флаг Notified. Сбой на одном дедлайне не мешает остальным.
// Если отправка прошла, а запись флага нет, на следующем проходе
// напоминание уйдёт повторно — осознанный компромисс
func (w *Worker) Run(now time.Time) {
	deadlines, err := database.PendingDeadlines(w.DB, now)
	if err != nil {
		w.Log.Printf("deadlines select: %s", err)

		return
	}
	for _, d := range deadlines {
		delta := d.DeadlineAt.Sub(now)
		if delta <= 0 || delta > LookAhead {
			continue
		}
		msg := tgbotapi.NewMessage(d.TgId, Text(d, w.Location))
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := w.TG.Send(msg); err != nil {
			w.Log.Printf("deadline %d send: %s", d.DeadlineId, err)

			continue
		}
		if err := database.MarkNotified(w.DB, d.DeadlineId); err != nil {
			w.Log.Printf("deadline %d mark: %s", d.DeadlineId, err)
		}
	}
}

func Text(d database.Deadline, loc *time.Location) string {
	return fmt.Sprintf(
		"Напоминание!\n<b>%s</b>\nДедлайн в %s",
		d.Title,
		d.DeadlineAt.In(loc).Format("15:04 02.01.2006"),
	)
}
