package model

// Model is a boat product line (table models).
// A boat order's model determines which master tasks are expanded for it.
type Model struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	BaseModel
}

func (Model) TableName() string { return "models" }
