package task

type Task struct {
	ID          int64
	OwnerID     int64
	Description string
	Completed   bool
}
