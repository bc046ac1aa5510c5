package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"todobot/internal/db/task"
)

type RepositorySQlite struct {
	db *sql.DB
}

func NewRepositorySQlite(db *sql.DB) *RepositorySQlite {
	return &RepositorySQlite{db: db}
}

func (r *RepositorySQlite) Init() error {
	_, err := r.db.Exec(createTableQuery)
	return err
}

func (r *RepositorySQlite) Create(ctx context.Context, ownerID int64, description string) (task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return task.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, insertQuery, ownerID, description)
	if err != nil {
		log.Printf("[RepositorySQlite.Create] ownerID=%d error=%v", ownerID, err)
		return task.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return task.Task{}, err
	}

	log.Printf("[RepositorySQlite.Create] success id=%d ownerID=%d", id, ownerID)
	return task.Task{ID: id, OwnerID: ownerID, Description: description, Completed: false}, nil
}

func (r *RepositorySQlite) ListByOwner(ctx context.Context, ownerID int64) ([]task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, listByOwnerQuery, ownerID)
	if err != nil {
		log.Printf("[RepositorySQlite.ListByOwner] ownerID=%d error=%v", ownerID, err)
		return nil, err
	}

	var tasks []task.Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Description, &t.Completed); err != nil {
			_ = rows.Close()
			return nil, err
		}
		tasks = append(tasks, task.Task(t))
	}

	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// Rows must be closed before the transaction can commit.
	if err := rows.Close(); err != nil {
		log.Println("[RepositorySQlite.ListByOwner] Error closing rows:", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *RepositorySQlite) Complete(ctx context.Context, taskID, ownerID int64) (task.Task, error) {
	return r.complete(ctx, selectByIdOwnerQuery, taskID, ownerID)
}

// CompleteByID skips the ownership filter. Used by the HTTP API only,
// which exposes complete/delete without an owner parameter.
func (r *RepositorySQlite) CompleteByID(ctx context.Context, taskID int64) (task.Task, error) {
	return r.complete(ctx, selectByIdQuery, taskID)
}

func (r *RepositorySQlite) complete(ctx context.Context, lookup string, args ...any) (task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return task.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	t, err := scanTask(tx.QueryRowContext(ctx, lookup, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("[RepositorySQlite.Complete] not found args=%v", args)
		return task.Task{}, task.ErrNotFound
	}
	if err != nil {
		log.Printf("[RepositorySQlite.Complete] lookup args=%v error=%v", args, err)
		return task.Task{}, err
	}

	if _, err := tx.ExecContext(ctx, completeQuery, t.ID); err != nil {
		log.Printf("[RepositorySQlite.Complete] update id=%d error=%v", t.ID, err)
		return task.Task{}, err
	}
	t.Completed = true

	if err := tx.Commit(); err != nil {
		return task.Task{}, err
	}

	log.Printf("[RepositorySQlite.Complete] success id=%d ownerID=%d", t.ID, t.OwnerID)
	return t, nil
}

func (r *RepositorySQlite) Delete(ctx context.Context, taskID, ownerID int64) (task.Task, error) {
	return r.delete(ctx, selectByIdOwnerQuery, taskID, ownerID)
}

// DeleteByID skips the ownership filter, same as CompleteByID.
func (r *RepositorySQlite) DeleteByID(ctx context.Context, taskID int64) (task.Task, error) {
	return r.delete(ctx, selectByIdQuery, taskID)
}

func (r *RepositorySQlite) delete(ctx context.Context, lookup string, args ...any) (task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return task.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	t, err := scanTask(tx.QueryRowContext(ctx, lookup, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("[RepositorySQlite.Delete] not found args=%v", args)
		return task.Task{}, task.ErrNotFound
	}
	if err != nil {
		log.Printf("[RepositorySQlite.Delete] lookup args=%v error=%v", args, err)
		return task.Task{}, err
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, t.ID); err != nil {
		log.Printf("[RepositorySQlite.Delete] delete id=%d error=%v", t.ID, err)
		return task.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return task.Task{}, err
	}

	log.Printf("[RepositorySQlite.Delete] success id=%d ownerID=%d", t.ID, t.OwnerID)
	return t, nil
}

func (r *RepositorySQlite) CloseConnection() error {
	return r.db.Close()
}

func scanTask(row *sql.Row) (task.Task, error) {
	var t Task
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Description, &t.Completed); err != nil {
		return task.Task{}, err
	}
	return task.Task(t), nil
}
