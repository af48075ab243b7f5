// Читающий HTTP API поверх тех же таблиц: дедлайны и расписание.
// Ничего не изменяет, бот живёт своей жизнью
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/mergestat/timediff"
	"xorm.io/xorm"

	"stud.group321.ru/bot/modules/database"
)

type Server struct {
	DB       *xorm.Engine
	Location *time.Location
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/api/deadlines/{tgid:[0-9]+}", s.deadlines).Methods("GET")
	r.HandleFunc("/api/schedule/{day:[1-5]}", s.schedule).Methods("GET")

	return r
}

func (s *Server) Listen(addr string) error {
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

type deadlineItem struct {
	Title string `json:"title"`
	DueAt string `json:"due_at"`
	DueIn string `json:"due_in"`
}

// Будущие дедлайны пользователя, ближайшие первыми
func (s *Server) deadlines(w http.ResponseWriter, r *http.Request) {
	tgID, err := strconv.ParseInt(mux.Vars(r)["tgid"], 10, 64)
	if err != nil {
		http.Error(w, "bad tgid", http.StatusBadRequest)

		return
	}
	now := time.Now()
	deadlines, err := database.FutureDeadlines(s.DB, tgID, now)
	if err != nil {
		log.Println(err)
		http.Error(w, "storage error", http.StatusInternalServerError)

		return
	}

	items := make([]deadlineItem, 0, len(deadlines))
	for _, d := range deadlines {
		items = append(items, deadlineItem{
			Title: d.Title,
			DueAt: d.DeadlineAt.In(s.Location).Format(time.RFC3339),
			DueIn: timediff.TimeDiff(d.DeadlineAt, timediff.WithStartTime(now)),
		})
	}
	writeJSON(w, items)
}

type scheduleItem struct {
	PairNumber int    `json:"pair_number"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Subject    string `json:"subject"`
	Classroom  string `json:"classroom,omitempty"`
	Teacher    string `json:"teacher,omitempty"`
	WeekType   string `json:"week_type,omitempty"`
}

func (s *Server) schedule(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		http.Error(w, "bad day", http.StatusBadRequest)

		return
	}
	entries, err := database.DaySchedule(s.DB, day)
	if err != nil {
		log.Println(err)
		http.Error(w, "storage error", http.StatusInternalServerError)

		return
	}

	items := make([]scheduleItem, 0, len(entries))
	for _, e := range entries {
		item := scheduleItem{
			PairNumber: e.PairNumber,
			Subject:    e.Subject,
			WeekType:   e.WeekType,
		}
		if slot, _ := database.SlotByPair(s.DB, e.PairNumber); slot != nil {
			item.StartTime = slot.StartTime
			item.EndTime = slot.EndTime
		}
		if room, _ := database.ClassroomByID(s.DB, e.ClassroomId); room != nil {
			item.Classroom = room.Number
		}
		if teacher, _ := database.TeacherByID(s.DB, e.TeacherId); teacher != nil {
			item.Teacher = teacher.Name
		}
		items = append(items, item)
	}
	writeJSON(w, items)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}
