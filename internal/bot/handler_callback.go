package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"todobot/internal/db/task"
)

type CallbackHandler struct {
	Repository task.Repository
	Sessions   *Sessions
}

func NewCallbackHandler(r task.Repository, s *Sessions) *CallbackHandler {
	return &CallbackHandler{Repository: r, Sessions: s}
}

func (h *CallbackHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		return
	}

	cb := update.CallbackQuery
	msg := cb.Message.Message
	if msg == nil {
		h.answer(ctx, b, cb.ID, "", false)
		return
	}

	chatID := msg.Chat.ID
	messageID := msg.ID
	userID := cb.From.ID

	action := ParseAction(cb.Data)
	switch action.Kind {
	case ActionAddTask:
		h.answer(ctx, b, cb.ID, "", false)
		h.edit(ctx, b, chatID, messageID, addTaskPrompt, backKeyboard("🔙 Назад"))
		h.Sessions.Await(userID)

	case ActionListTasks:
		h.answer(ctx, b, cb.ID, "", false)
		h.showTasks(ctx, b, chatID, messageID, userID)

	case ActionAbout:
		h.answer(ctx, b, cb.ID, "", false)
		h.edit(ctx, b, chatID, messageID, aboutText, backKeyboard("🔙 Назад"))

	case ActionBack:
		h.answer(ctx, b, cb.ID, "", false)
		h.edit(ctx, b, chatID, messageID, greetingText(cb.From.FirstName), mainMenuKeyboard())

	case ActionCompleteTask:
		h.completeTask(ctx, b, cb, action.TaskID)
		h.showTasks(ctx, b, chatID, messageID, userID)

	case ActionDeleteTask:
		h.deleteTask(ctx, b, cb, action.TaskID)
		h.showTasks(ctx, b, chatID, messageID, userID)

	default:
		log.Printf("[CallbackHandler.Handle] unknown payload userID=%d data=%q", userID, cb.Data)
		h.answer(ctx, b, cb.ID, "", false)
		h.edit(ctx, b, chatID, messageID, "❌ Неизвестная команда", backKeyboard("🔙 Назад"))
	}
}

func (h *CallbackHandler) showTasks(ctx context.Context, b *bot.Bot, chatID int64, messageID int, userID int64) {
	tasks, err := h.Repository.ListByOwner(ctx, userID)
	if err != nil {
		log.Printf("[CallbackHandler.showTasks] userID=%d err=%v", userID, err)
		h.edit(ctx, b, chatID, messageID, "❌ Произошла ошибка при получении задач", backKeyboard("🔙 Назад"))
		return
	}

	text, keyboard := renderTaskList(tasks)
	h.edit(ctx, b, chatID, messageID, text, keyboard)
}

func (h *CallbackHandler) completeTask(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery, taskID int64) {
	t, err := h.Repository.Complete(ctx, taskID, cb.From.ID)
	switch {
	case errors.Is(err, task.ErrNotFound):
		h.answer(ctx, b, cb.ID, "⚠️ Задача не найдена", true)
	case err != nil:
		log.Printf("[CallbackHandler.completeTask] userID=%d taskID=%d err=%v", cb.From.ID, taskID, err)
		h.answer(ctx, b, cb.ID, "❌ Ошибка при обновлении задачи", true)
	default:
		h.answer(ctx, b, cb.ID, fmt.Sprintf("🎉 Задача выполнена: %s", t.Description), true)
	}
}

func (h *CallbackHandler) deleteTask(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery, taskID int64) {
	t, err := h.Repository.Delete(ctx, taskID, cb.From.ID)
	switch {
	case errors.Is(err, task.ErrNotFound):
		h.answer(ctx, b, cb.ID, "⚠️ Задача не найдена", true)
	case err != nil:
		log.Printf("[CallbackHandler.deleteTask] userID=%d taskID=%d err=%v", cb.From.ID, taskID, err)
		h.answer(ctx, b, cb.ID, "❌ Ошибка при удалении задачи", true)
	default:
		h.answer(ctx, b, cb.ID, fmt.Sprintf("🗑 Задача удалена: %s", t.Description), true)
	}
}

func (h *CallbackHandler) answer(ctx context.Context, b *bot.Bot, callbackID, text string, alert bool) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		log.Printf("[CallbackHandler.answer] err=%v", err)
	}
}

func (h *CallbackHandler) edit(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, keyboard *models.InlineKeyboardMarkup) {
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		log.Printf("[CallbackHandler.edit] chatID=%d messageID=%d err=%v", chatID, messageID, err)
	}
}
