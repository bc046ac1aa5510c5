package main

import (
	"context"
	"database/sql"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	_ "github.com/mattn/go-sqlite3"
	"log"
	"os"
	"os/signal"
	"todobot/internal/api"
	internalbot "todobot/internal/bot"
	"todobot/internal/config"
	"todobot/internal/db/task/sqlite"
)

var txt internalbot.Handler

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite3", cfg.DbPath)
	if err != nil {
		log.Fatal(err)
	}
	repository := sqlite.NewRepositorySQlite(db)
	if err := repository.Init(); err != nil {
		log.Fatal("Cannot initialize repository: ", err, " ", cfg.DbPath)
	}
	defer func(repository *sqlite.RepositorySQlite) {
		if err := repository.CloseConnection(); err != nil {
			log.Println(err)
		}
	}(repository)

	sessions := internalbot.NewSessions()
	start := internalbot.NewStartHandler()
	callback := internalbot.NewCallbackHandler(repository, sessions)
	txt = internalbot.NewTextHandler(repository, sessions)

	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(handleText))
	if err != nil {
		log.Fatal(err)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, start.Handle)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, callback.Handle)

	app := api.New(repository)
	go func() {
		log.Println("[main] HTTP server listening on", cfg.HTTPAddr)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Println("[main] HTTP server error:", err)
		}
	}()

	b.Start(ctx)

	if err := app.Shutdown(); err != nil {
		log.Println("[main] HTTP server shutdown:", err)
	}
}

func handleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	if update.Message.Text != "" {
		txt.Handle(ctx, b, update)
	}
}
