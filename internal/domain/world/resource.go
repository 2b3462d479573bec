package world

type ResourceKind struct {
	DefName         string `json:"def_name"`
	Label           string `json:"label"`
	CountPerPortion int    `json:"count_per_portion"`
}

func (k ResourceKind) IsZero() bool {
	return k.DefName == ""
}

type ItemStack struct {
	Kind  ResourceKind `json:"kind"`
	Count int          `json:"count"`
}
