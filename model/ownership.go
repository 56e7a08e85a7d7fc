package model

// OwnershipMap maps a land id to the id of the user currently owning it.
type OwnershipMap struct {
	Owners map[string]string
}

func NewOwnershipMap() OwnershipMap {
	return OwnershipMap{
		Owners: make(map[string]string),
	}
}
