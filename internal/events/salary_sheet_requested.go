package events

import "time"

const SalarySheetRequestedTopic = "payroll.salary.sheet.requested.v1"

type SalarySheetRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	Org         string    `json:"org"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	RunNumber   int64     `json:"run_number"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
