package bot

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"todobot/internal/db/task"
)

// Static texts are written pre-escaped for MarkdownV2; anything
// user-supplied goes through bot.EscapeMarkdown before rendering.
const aboutText = `🌟 *Todo Bot*

📌 Версия: 1\.0

📝 Этот бот поможет вам организовать свои задачи и никогда ничего не забывать\!

🔹 Добавляйте задачи
🔹 Отмечайте выполненные
🔹 Удаляйте ненужные`

const addTaskPrompt = "✏️ *Напиши задачу, которую хочешь добавить:*\n\nПример: Сделать домашку по математике"

const emptyListText = "📭 У тебя пока нет задач"

const invalidTaskText = "❌ Задача не должна быть пустой или длиннее 255 символов"

func greetingText(firstName string) string {
	return fmt.Sprintf("📝 *Привет, %s\\!*\nЯ твой персональный Todo бот\\.\n\nВыбери действие:", bot.EscapeMarkdown(firstName))
}

func addedText(description string) string {
	return fmt.Sprintf("✅ *Задача добавлена\\!*\n\n%s", bot.EscapeMarkdown(description))
}

func mainMenuKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "➕ Добавить задачу", CallbackData: "add_task"}},
			{{Text: "📝 Мои задачи", CallbackData: "list_tasks"}},
			{{Text: "✨ О боте", CallbackData: "about"}},
		},
	}
}

func backKeyboard(label string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: label, CallbackData: "back"}},
		},
	}
}

// renderTaskList builds the list text plus one button row per task:
// a complete button for incomplete tasks and a delete button for all.
func renderTaskList(tasks []task.Task) (string, *models.InlineKeyboardMarkup) {
	if len(tasks) == 0 {
		return emptyListText, backKeyboard("🔙 Назад")
	}

	var sb strings.Builder
	sb.WriteString("📋 *Твой список задач:*\n\n")

	var keyboard [][]models.InlineKeyboardButton
	for _, t := range tasks {
		status := "🟡"
		if t.Completed {
			status = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %d\\. %s\n", status, t.ID, bot.EscapeMarkdown(t.Description)))

		var row []models.InlineKeyboardButton
		if !t.Completed {
			row = append(row, models.InlineKeyboardButton{
				Text:         fmt.Sprintf("✔️ Завершить %d", t.ID),
				CallbackData: fmt.Sprintf("complete_task %d", t.ID),
			})
		}
		row = append(row, models.InlineKeyboardButton{
			Text:         fmt.Sprintf("❌ Удалить %d", t.ID),
			CallbackData: fmt.Sprintf("delete_task %d", t.ID),
		})
		keyboard = append(keyboard, row)
	}

	keyboard = append(keyboard, []models.InlineKeyboardButton{
		{Text: "🔙 Назад", CallbackData: "back"},
	})

	return sb.String(), &models.InlineKeyboardMarkup{InlineKeyboard: keyboard}
}
