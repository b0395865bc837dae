package model

import "time"

// ProductionScheduleSlot is one build slot with its per-station dates (table
// production_schedule). The station date columns are literal columns in a
// fixed order; the auto-schedule walk is defined over that order.
type ProductionScheduleSlot struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SlotNumber string `gorm:"type:varchar(20)"         json:"slot_number"`
	Takt       *int   `json:"takt,omitempty"`
	BoatModel  *int64 `json:"boat_model,omitempty"`
	HullNumber string `gorm:"type:varchar(20)"         json:"hull_number"`

	LamGrid            *time.Time `gorm:"type:date" json:"lam_grid,omitempty"`
	LamHull            *time.Time `gorm:"type:date" json:"lam_hull,omitempty"`
	LamDeck            *time.Time `gorm:"type:date" json:"lam_deck,omitempty"`
	TrimAndGrindGrid   *time.Time `gorm:"column:trimandgrind_grid;type:date"   json:"trimandgrind_grid,omitempty"`
	TrimAndGrindHull   *time.Time `gorm:"column:trimandgrind_hull;type:date"   json:"trimandgrind_hull,omitempty"`
	TrimAndGrindDeck   *time.Time `gorm:"column:trimandgrind_deck;type:date"   json:"trimandgrind_deck,omitempty"`
	PatchAndDetailHull *time.Time `gorm:"column:patchanddetail_hull;type:date" json:"patchanddetail_hull,omitempty"`
	PatchAndDetailDeck *time.Time `gorm:"column:patchanddetail_deck;type:date" json:"patchanddetail_deck,omitempty"`
	OpenHull1          *time.Time `gorm:"column:open_hull_1;type:date" json:"open_hull_1,omitempty"`
	OpenDeck1          *time.Time `gorm:"column:open_deck_1;type:date" json:"open_deck_1,omitempty"`
	OpenHull2          *time.Time `gorm:"column:open_hull_2;type:date" json:"open_hull_2,omitempty"`
	OpenDeck2          *time.Time `gorm:"column:open_deck_2;type:date" json:"open_deck_2,omitempty"`
	Final1             *time.Time `gorm:"column:final_1;type:date"     json:"final_1,omitempty"`
	Final2             *time.Time `gorm:"column:final_2;type:date"     json:"final_2,omitempty"`
	Final3             *time.Time `gorm:"column:final_3;type:date"     json:"final_3,omitempty"`
	Commissioning      *time.Time `gorm:"type:date" json:"commissioning,omitempty"`
	Shipment           *time.Time `gorm:"type:date" json:"shipment,omitempty"`
	BaseModel
}

func (ProductionScheduleSlot) TableName() string { return "production_schedule" }

// StationDateColumns is the fixed station column order, first to last in the
// production line. Auto-scheduling walks this list.
var StationDateColumns = []string{
	"lam_grid",
	"lam_hull",
	"lam_deck",
	"trimandgrind_grid",
	"trimandgrind_hull",
	"trimandgrind_deck",
	"patchanddetail_hull",
	"patchanddetail_deck",
	"open_hull_1",
	"open_deck_1",
	"open_hull_2",
	"open_deck_2",
	"final_1",
	"final_2",
	"final_3",
	"commissioning",
	"shipment",
}

// IsStationDateColumn reports whether col names one of the station date
// columns. Cell updates accept only these plus the slot header fields.
func IsStationDateColumn(col string) bool {
	for _, c := range StationDateColumns {
		if c == col {
			return true
		}
	}
	return false
}

// StationDate returns the date stored in the named station column.
func (s *ProductionScheduleSlot) StationDate(col string) *time.Time {
	if p := s.stationDatePtr(col); p != nil {
		return *p
	}
	return nil
}

// SetStationDate sets the named station column.
func (s *ProductionScheduleSlot) SetStationDate(col string, t *time.Time) {
	if p := s.stationDatePtr(col); p != nil {
		*p = t
	}
}

func (s *ProductionScheduleSlot) stationDatePtr(col string) **time.Time {
	switch col {
	case "lam_grid":
		return &s.LamGrid
	case "lam_hull":
		return &s.LamHull
	case "lam_deck":
		return &s.LamDeck
	case "trimandgrind_grid":
		return &s.TrimAndGrindGrid
	case "trimandgrind_hull":
		return &s.TrimAndGrindHull
	case "trimandgrind_deck":
		return &s.TrimAndGrindDeck
	case "patchanddetail_hull":
		return &s.PatchAndDetailHull
	case "patchanddetail_deck":
		return &s.PatchAndDetailDeck
	case "open_hull_1":
		return &s.OpenHull1
	case "open_deck_1":
		return &s.OpenDeck1
	case "open_hull_2":
		return &s.OpenHull2
	case "open_deck_2":
		return &s.OpenDeck2
	case "final_1":
		return &s.Final1
	case "final_2":
		return &s.Final2
	case "final_3":
		return &s.Final3
	case "commissioning":
		return &s.Commissioning
	case "shipment":
		return &s.Shipment
	}
	return nil
}
