package bot

import (
	"strconv"
	"strings"
)

type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionAddTask
	ActionListTasks
	ActionAbout
	ActionBack
	ActionCompleteTask
	ActionDeleteTask
)

// Action is a callback-button payload parsed once at the boundary.
// TaskID is set only for complete/delete actions.
type Action struct {
	Kind   ActionKind
	TaskID int64
}

func ParseAction(data string) Action {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return Action{Kind: ActionUnknown}
	}

	switch fields[0] {
	case "add_task":
		return Action{Kind: ActionAddTask}
	case "list_tasks":
		return Action{Kind: ActionListTasks}
	case "about":
		return Action{Kind: ActionAbout}
	case "back":
		return Action{Kind: ActionBack}
	case "complete_task", "delete_task":
		if len(fields) != 2 {
			return Action{Kind: ActionUnknown}
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || id <= 0 {
			return Action{Kind: ActionUnknown}
		}
		if fields[0] == "complete_task" {
			return Action{Kind: ActionCompleteTask, TaskID: id}
		}
		return Action{Kind: ActionDeleteTask, TaskID: id}
	}

	return Action{Kind: ActionUnknown}
}
