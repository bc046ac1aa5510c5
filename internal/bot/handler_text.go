package bot

import (
	"context"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"todobot/internal/db/task"
)

type TextHandler struct {
	Repository task.Repository
	Sessions   *Sessions
}

func NewTextHandler(r task.Repository, s *Sessions) *TextHandler {
	return &TextHandler{Repository: r, Sessions: s}
}

func (h *TextHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	// Only a message prompted by the add button is a task description.
	if !h.Sessions.Claim(userID) {
		return
	}

	if err := task.ValidateDescription(text); err != nil {
		log.Printf("[TextHandler.Handle] invalid description userID=%d err=%v", userID, err)
		h.send(ctx, b, chatID, invalidTaskText, backKeyboard("В главное меню"))
		return
	}

	t, err := h.Repository.Create(ctx, userID, text)
	if err != nil {
		log.Printf("[TextHandler.Handle] create failed userID=%d err=%v", userID, err)
		h.send(ctx, b, chatID, "❌ Произошла ошибка при добавлении задачи", backKeyboard("В главное меню"))
		return
	}

	// Tidy up the chat: the raw description message is no longer needed.
	_, err = b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: update.Message.ID,
	})
	if err != nil {
		log.Printf("[TextHandler.Handle] DeleteMessage chatID=%d err=%v", chatID, err)
	}

	log.Printf("[TextHandler.Handle] task added userID=%d taskID=%d", userID, t.ID)
	h.send(ctx, b, chatID, addedText(t.Description), backKeyboard("В главное меню"))
}

func (h *TextHandler) send(ctx context.Context, b *bot.Bot, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		log.Printf("[TextHandler.send] chatID=%d err=%v", chatID, err)
	}
}
