package utils

import (
	"fmt"
	"math"

	"github.com/Luismorlan/land_in_go/model"
)

// NewValidatorRegistry validates and copies validators, keeping their order.
func NewValidatorRegistry(validators []model.Validator) (*model.ValidatorRegistry, error) {
	if len(validators) == 0 {
		return nil, model.ErrEmptyValidatorSet
	}
	r := &model.ValidatorRegistry{
		Validators: make([]model.Validator, 0, len(validators)),
	}
	seen := make(map[string]bool)
	for i, v := range validators {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: validator %d has empty name", model.ErrInvalidStake, i)
		}
		// Also rejects NaN, which fails every comparison.
		if !(v.Stake > 0) || math.IsInf(v.Stake, 0) {
			return nil, fmt.Errorf("%w: %s has stake %v", model.ErrInvalidStake, v.Name, v.Stake)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicateValidator, v.Name)
		}
		seen[v.Name] = true
		r.Validators = append(r.Validators, v)
		r.TotalStake += v.Stake
	}
	return r, nil
}

// SelectValidator runs the stake lottery. It draws u in [0, TotalStake) and returns the first
// validator, in registry order, whose cumulative stake reaches u.
func SelectValidator(r *model.ValidatorRegistry, rnd RandomSource) (string, error) {
	if r == nil || len(r.Validators) == 0 {
		return "", model.ErrEmptyValidatorSet
	}
	return PickByCumulativeStake(r, rnd.Float64()*r.TotalStake), nil
}

// PickByCumulativeStake maps a draw onto the registry.
func PickByCumulativeStake(r *model.ValidatorRegistry, draw float64) string {
	cumulative := 0.0
	for _, v := range r.Validators {
		cumulative += v.Stake
		if cumulative >= draw {
			return v.Name
		}
	}
	// Only reachable through float rounding on the last addition.
	return r.Validators[len(r.Validators)-1].Name
}
