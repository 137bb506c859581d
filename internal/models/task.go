package models

import "time"

// Task is a row of the tasks table.
type Task struct {
	TaskID      string    `db:"task_id"`
	Title       string    `db:"title"`
	Kind        string    `db:"kind"`
	TaskDate    time.Time `db:"task_date"`
	TaskTime    *string   `db:"task_time"`
	Client      *string   `db:"client"`
	Location    *string   `db:"location"`
	Description *string   `db:"description"`
	Completed   bool      `db:"completed"`
	AuditFields
}
