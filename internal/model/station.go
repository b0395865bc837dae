package model

// Station is a physical production stage (table stations).
// station_sequence determines presentation order only, not a state machine.
type Station struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name            string `gorm:"type:varchar(100);not null" json:"name"`
	StationSequence *int   `json:"station_sequence,omitempty"`
	BaseModel
}

func (Station) TableName() string { return "stations" }
