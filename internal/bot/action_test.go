package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Action
	}{
		{"add task", "add_task", Action{Kind: ActionAddTask}},
		{"list tasks", "list_tasks", Action{Kind: ActionListTasks}},
		{"about", "about", Action{Kind: ActionAbout}},
		{"back", "back", Action{Kind: ActionBack}},
		{"complete with id", "complete_task 12", Action{Kind: ActionCompleteTask, TaskID: 12}},
		{"delete with id", "delete_task 3", Action{Kind: ActionDeleteTask, TaskID: 3}},
		{"complete without id", "complete_task", Action{Kind: ActionUnknown}},
		{"delete without id", "delete_task", Action{Kind: ActionUnknown}},
		{"complete with garbage id", "complete_task abc", Action{Kind: ActionUnknown}},
		{"negative id", "delete_task -1", Action{Kind: ActionUnknown}},
		{"zero id", "complete_task 0", Action{Kind: ActionUnknown}},
		{"extra field", "complete_task 1 2", Action{Kind: ActionUnknown}},
		{"empty payload", "", Action{Kind: ActionUnknown}},
		{"whitespace only", "   ", Action{Kind: ActionUnknown}},
		{"unknown token", "self_destruct", Action{Kind: ActionUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAction(tt.data))
		})
	}
}
