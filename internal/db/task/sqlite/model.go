package sqlite

type Task struct {
	ID          int64  `db:"id"`
	OwnerID     int64  `db:"owner_id"`
	Description string `db:"description"`
	Completed   bool   `db:"completed"`
}
