package model

import "time"

const TableNameDrillState = "drill_states"

// DrillState mapped from table <drill_states>
type DrillState struct {
	ColonyID  string    `gorm:"column:colony_id;primaryKey" json:"colony_id"`
	DrillID   string    `gorm:"column:drill_id;primaryKey" json:"drill_id"`
	Kind      string    `gorm:"column:kind;not null" json:"kind"`
	X         int32     `gorm:"column:x;not null" json:"x"`
	Y         int32     `gorm:"column:y;not null" json:"y"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	Powered   bool      `gorm:"column:powered;not null;default:true" json:"powered"`
	Seq       int64     `gorm:"column:seq;not null" json:"seq"`
	SaveData  []byte    `gorm:"column:save_data;not null" json:"save_data"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName DrillState's table name
func (*DrillState) TableName() string {
	return TableNameDrillState
}
