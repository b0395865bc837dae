package model

// ModelOption is a master-catalog option for a model (table model_options).
type ModelOption struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"    json:"id"`
	ModelID    int64  `gorm:"not null"                    json:"model_id"`
	OptionText string `gorm:"type:varchar(1000);not null" json:"option_text"`
	BaseModel
}

func (ModelOption) TableName() string { return "model_options" }

// DoNotShowOption is an option line suppressed at order ingestion (table
// do_not_show_options).
type DoNotShowOption struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"    json:"id"`
	OptionText string `gorm:"type:varchar(1000);not null" json:"option_text"`
	BaseModel
}

func (DoNotShowOption) TableName() string { return "do_not_show_options" }
