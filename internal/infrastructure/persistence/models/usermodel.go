package models

type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"uniqueIndex;size:255;not null"`
	DisplayName string `gorm:"size:100"`
	Phone       string `gorm:"size:30"`
	Role        string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type OrderModel struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"not null;index"`
	Status     string `gorm:"size:30;not null;index"`
	TotalCents int64  `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (OrderModel) TableName() string {
	return "orders"
}
