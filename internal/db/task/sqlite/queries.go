package sqlite

const createTableQuery = `
CREATE TABLE IF NOT EXISTS todo_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id INTEGER NOT NULL,
	description TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT 0
);
`

const insertQuery = `
INSERT INTO todo_items (owner_id, description, completed)
VALUES (?, ?, 0);
`

const listByOwnerQuery = `
SELECT id, owner_id, description, completed
FROM todo_items
WHERE owner_id = ?
ORDER BY completed, id;
`

const selectByIdOwnerQuery = `
SELECT id, owner_id, description, completed
FROM todo_items
WHERE id = ? AND owner_id = ?;
`

const selectByIdQuery = `
SELECT id, owner_id, description, completed
FROM todo_items
WHERE id = ?;
`

const completeQuery = `
UPDATE todo_items
SET completed = 1
WHERE id = ?;
`

const deleteQuery = `
DELETE FROM todo_items
WHERE id = ?;
`
