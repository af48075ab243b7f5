package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"xorm.io/xorm"
	"xorm.io/xorm/names"

	"stud.group321.ru/bot/modules/database"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	engine, err := xorm.NewEngine("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	engine.SetMapper(names.SameMapper{})
	engine.DatabaseTZ = time.UTC
	engine.TZLocation = time.UTC
	if err := database.Sync(engine); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { engine.Close() })

	return &Server{DB: engine, Location: time.FixedZone("MSK", 3*60*60)}
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body: %v", body)
	}
}

func TestDeadlines(t *testing.T) {
	s := testServer(t)
	now := time.Now().UTC().Truncate(time.Minute)

	rows := []database.Deadline{
		{TgId: 1, Title: "второй", DeadlineAt: now.Add(48 * time.Hour)},
		{TgId: 1, Title: "первый", DeadlineAt: now.Add(24 * time.Hour)},
		{TgId: 1, Title: "прошедший", DeadlineAt: now.Add(-time.Hour)},
		{TgId: 2, Title: "чужой", DeadlineAt: now.Add(24 * time.Hour)},
	}
	for i := range rows {
		if _, err := s.DB.Insert(&rows[i]); err != nil {
			t.Fatal(err)
		}
	}

	rec := get(t, s, "/api/deadlines/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var items []deadlineItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %+v", items)
	}
	if items[0].Title != "первый" || items[1].Title != "второй" {
		t.Fatalf("wrong order: %+v", items)
	}
	if items[0].DueIn == "" {
		t.Fatal("due_in empty")
	}
	if _, err := time.Parse(time.RFC3339, items[0].DueAt); err != nil {
		t.Fatalf("due_at not RFC3339: %s", items[0].DueAt)
	}
}

func TestDeadlinesEmpty(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/deadlines/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	// Пустой список, а не null
	if rec.Body.String() != "[]\n" {
		t.Fatalf("body: %q", rec.Body.String())
	}
}

func TestSchedule(t *testing.T) {
	s := testServer(t)

	seed := []interface{}{
		&database.ScheduleEntry{EntryId: 1, DayOfWeek: 1, PairNumber: 2, Subject: "Матанализ", WeekType: "odd"},
		&database.ScheduleEntry{EntryId: 2, DayOfWeek: 1, PairNumber: 1, Subject: "Алгебра", ClassroomId: 1, TeacherId: 1},
		&database.Classroom{ClassroomId: 1, Number: "301"},
		&database.Teacher{TeacherId: 1, Name: "Петров П. П."},
		&database.TimeSlot{PairNumber: 1, StartTime: "08:30", EndTime: "10:05"},
	}
	for _, row := range seed {
		if _, err := s.DB.Insert(row); err != nil {
			t.Fatal(err)
		}
	}

	rec := get(t, s, "/api/schedule/1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var items []scheduleItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %+v", items)
	}
	first := items[0]
	if first.PairNumber != 1 || first.Subject != "Алгебра" {
		t.Fatalf("wrong order: %+v", items)
	}
	if first.StartTime != "08:30" || first.Classroom != "301" || first.Teacher != "Петров П. П." {
		t.Fatalf("references not resolved: %+v", first)
	}
	if items[1].WeekType != "odd" || items[1].Classroom != "" {
		t.Fatalf("second item: %+v", items[1])
	}
}

func TestBadRoutes(t *testing.T) {
	s := testServer(t)

	// Несоответствие шаблону маршрута
	if rec := get(t, s, "/api/schedule/7"); rec.Code != http.StatusNotFound {
		t.Fatalf("day 7: status %d", rec.Code)
	}
	if rec := get(t, s, "/api/deadlines/abc"); rec.Code != http.StatusNotFound {
		t.Fatalf("bad tgid: status %d", rec.Code)
	}
}
