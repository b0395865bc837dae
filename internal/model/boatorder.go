package model

import "time"

// BoatOrder is one ingested production order document (table boat_orders).
// Immutable after creation.
type BoatOrder struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"  json:"id"`
	HullNumber   string    `gorm:"type:varchar(20);not null" json:"hull_number"`
	RevisionDate time.Time `gorm:"type:date;not null"        json:"revision_date"`
	FileName     string    `gorm:"type:varchar(255)"         json:"file_name"`
	Model        *int64    `json:"model,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (BoatOrder) TableName() string { return "boat_orders" }

// BoatOrderOption is one extracted order line (table boat_order_options).
// Created in batch at order-ingestion time.
type BoatOrderOption struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"    json:"id"`
	BoatOrderID int64     `gorm:"not null"                    json:"boat_order_id"`
	OptionText  string    `gorm:"type:varchar(1000);not null" json:"option_text"`
	IsHeader    bool      `gorm:"not null;default:false"      json:"is_header"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (BoatOrderOption) TableName() string { return "boat_order_options" }

// BoatOrderHeader is a known section-header line for a model (table
// boat_order_headers). Option lines matching one are flagged at ingest.
type BoatOrderHeader struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	ModelID    int64  `gorm:"not null"                   json:"model_id"`
	HeaderText string `gorm:"type:varchar(500);not null" json:"header_text"`
	BaseModel
}

func (BoatOrderHeader) TableName() string { return "boat_order_headers" }
