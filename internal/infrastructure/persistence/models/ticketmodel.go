package models

type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Number        string `gorm:"uniqueIndex;size:50;not null"`
	CustomerID    uint   `gorm:"not null;index"`
	CustomerName  string `gorm:"size:100"`
	CustomerEmail string `gorm:"size:255"`
	CustomerPhone string `gorm:"size:30"`
	OrderID       *uint  `gorm:"index"`
	Category      string `gorm:"size:50;not null;index"`
	Subject       string `gorm:"size:200;not null"`
	Description   string `gorm:"type:text;not null"`
	OwnerID       *uint  `gorm:"index"`
	Status        string `gorm:"size:30;not null;index"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	AuthorID    *uint  `gorm:"index"`
	AuthorRole  string `gorm:"size:20;not null"`
	AuthorEmail string `gorm:"size:255"`
	Message     string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type FeedbackModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"uniqueIndex;not null"`
	Stars     int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FeedbackModel) TableName() string {
	return "ticket_feedbacks"
}
