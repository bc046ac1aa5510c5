package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNotFound is returned when a task does not exist or does not belong
// to the requesting owner. The two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("task not found")

const MaxDescriptionLen = 255

type Repository interface {
	Init() error
	Create(ctx context.Context, ownerID int64, description string) (Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Task, error)
	Complete(ctx context.Context, taskID, ownerID int64) (Task, error)
	Delete(ctx context.Context, taskID, ownerID int64) (Task, error)
	CompleteByID(ctx context.Context, taskID int64) (Task, error)
	DeleteByID(ctx context.Context, taskID int64) (Task, error)
	CloseConnection() error
}

// ValidateDescription rejects task text before it reaches the store.
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("description must not be empty")
	}
	if utf8.RuneCountInString(s) > MaxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters", MaxDescriptionLen)
	}
	return nil
}
