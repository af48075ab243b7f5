package main

import (
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"stud.group321.ru/bot/modules/api"
	"stud.group321.ru/bot/modules/database"
	"stud.group321.ru/bot/modules/notify"
	"stud.group321.ru/bot/modules/tg"
)

func main() {
	if err := tg.CheckEnv(); err != nil {
		log.Fatal(err)
	}
	logs := database.OpenLogs()
	defer logs.CloseAll()

	bot, err := tg.InitBot(
		logs,
		database.DB{
			User:   os.Getenv("MYSQL_USER"),
			Pass:   os.Getenv("MYSQL_PASS"),
			Schema: os.Getenv("MYSQL_DB"),
		},
		os.Getenv("TELEGRAM_APITOKEN"),
	)
	if err != nil {
		log.Fatal(err)
	}

	server := api.Server{DB: bot.DB, Location: bot.Location}
	go func() {
		log.Println(server.Listen(os.Getenv("API_ADDR")))
	}()

	worker := notify.Worker{
		TG:       bot.TG,
		DB:       bot.DB,
		Location: bot.Location,
		Log:      log.New(logs.NotifyFile, "", log.LstdFlags),
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("* * * * *", func() {
		worker.Run(time.Now())
	}); err != nil {
		log.Fatal(err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Started")
	for update := range *bot.Updates {
		if err := bot.HandleUpdate(update); err != nil {
			log.Println(err)
		}
	}
}
