package mdp

import (
	"fmt"

	"github.com/katalvlaran/diversity/instance"
)

// validateSize checks a target size independently of any instance.
func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("size %d: %w", size, ErrBadSize)
	}

	return nil
}

// validateFits checks that inst can hold a solution of the given size.
//
// Complexity: O(1).
func validateFits(inst *instance.Instance, size int) error {
	if inst == nil {
		return ErrNilInstance
	}
	if inst.Len() < size {
		return fmt.Errorf("size %d, instance has %d points: %w", size, inst.Len(), ErrNotEnoughPoints)
	}

	return nil
}

// validateOwned checks that s was drawn from inst.
func validateOwned(inst *instance.Instance, s Solution) error {
	if inst == nil {
		return ErrNilInstance
	}
	if s.inst != nil && s.inst != inst {
		return ErrForeignSolution
	}

	return nil
}
