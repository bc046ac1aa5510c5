package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type StartHandler struct{}

func NewStartHandler() *StartHandler { return &StartHandler{} }

func (h *StartHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        greetingText(update.Message.From.FirstName),
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: mainMenuKeyboard(),
	})
	if err != nil {
		log.Printf("[StartHandler.Handle] SendMessage chatID=%d err=%v", update.Message.Chat.ID, err)
	}
}
