package model

type Validator struct {
	Name string
	// Stake weight, always positive.
	Stake float64
}

// ValidatorRegistry keeps validators in insertion order so that the same random draw always
// picks the same validator.
type ValidatorRegistry struct {
	Validators []Validator
	TotalStake float64
}
