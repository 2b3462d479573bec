package model

const TableNameDepositCell = "deposit_cells"

// DepositCell mapped from table <deposit_cells>
type DepositCell struct {
	ColonyID string `gorm:"column:colony_id;primaryKey" json:"colony_id"`
	X        int32  `gorm:"column:x;primaryKey" json:"x"`
	Y        int32  `gorm:"column:y;primaryKey" json:"y"`
	DefName  string `gorm:"column:def_name;not null" json:"def_name"`
	Count    int32  `gorm:"column:count;not null" json:"count"`
}

// TableName DepositCell's table name
func (*DepositCell) TableName() string {
	return TableNameDepositCell
}
