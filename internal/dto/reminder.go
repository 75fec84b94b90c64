package dto

// ReminderRequest selects the week to remind about; it defaults to the current week.
type ReminderRequest struct {
	Week string `json:"week"`
}

// ReminderResponse lists the employees that were reminded.
type ReminderResponse struct {
	WeekStart string   `json:"weekStart"`
	Notified  []string `json:"notified"`
}
