package conversation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"fractalyx/internal/shared/biztime"
)

// DefaultTitleLayout formats the fallback title for conversations created
// without an explicit title.
const DefaultTitleLayout = "Conversation 2006-01-02 15:04"

// titlePreviewRunes is how much of the first user message is promoted into
// the conversation title.
const titlePreviewRunes = 30

type Conversation struct {
	id         uint
	customerID uint
	projectID  uint
	title      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewConversation(customerID, projectID uint, title string) (*Conversation, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	now := biztime.NowUTC()
	if title == "" {
		title = now.Format(DefaultTitleLayout)
	}

	return &Conversation{
		customerID: customerID,
		projectID:  projectID,
		title:      title,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructConversation(
	id uint,
	customerID uint,
	projectID uint,
	title string,
	createdAt, updatedAt time.Time,
) (*Conversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Conversation{
		id:         id,
		customerID: customerID,
		projectID:  projectID,
		title:      title,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Conversation) ID() uint {
	return c.id
}

func (c *Conversation) CustomerID() uint {
	return c.customerID
}

func (c *Conversation) ProjectID() uint {
	return c.projectID
}

func (c *Conversation) Title() string {
	return c.title
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// Touch bumps updated_at so recently active conversations sort first.
func (c *Conversation) Touch() {
	c.updatedAt = biztime.NowUTC()
}

// HasDefaultTitle reports whether the title is still the timestamp fallback
// assigned at creation.
func (c *Conversation) HasDefaultTitle() bool {
	if c.title == "" {
		return true
	}
	_, err := time.Parse(DefaultTitleLayout, c.title)
	return err == nil
}

// DeriveTitleFrom replaces a default title with a preview of the given
// message. Longer messages are cut at 30 runes with an ellipsis.
func (c *Conversation) DeriveTitleFrom(message string) {
	if !c.HasDefaultTitle() {
		return
	}
	if message == "" {
		return
	}

	title := message
	if utf8.RuneCountInString(message) > titlePreviewRunes {
		runes := []rune(message)
		title = string(runes[:titlePreviewRunes]) + "..."
	}

	c.title = title
	c.updatedAt = biztime.NowUTC()
}
