package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusReview     TicketStatus = "review"
	StatusCompleted  TicketStatus = "completed"
	StatusBlocked    TicketStatus = "blocked"
)

var validStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusReview:     true,
	StatusCompleted:  true,
	StatusBlocked:    true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validStatuses[s]
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

func (s TicketStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s TicketStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s TicketStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s TicketStatus) IsBlocked() bool {
	return s == StatusBlocked
}
