// Package mdp - Branch-and-Bound (exact search with an admissible upper bound).
//
// BranchAndBound maximizes z over all m-subsets of the instance.
//
//  1. Seeding: a caller-supplied Solver produces the initial incumbent. Its
//     z is the initial lower bound and its size fixes m.
//  2. Frontier: an open list of partial nodes, starting with the empty node.
//     A NodePolicy picks which node to expand next.
//  3. Expansion: a node with k chosen points whose last (largest) index is i
//     is extended only by indices j ∈ [i+1, n−m+k]. Subsets are generated
//     in ascending index order, so every m-subset has exactly one path, and
//     the upper limit leaves enough indices to complete the subset.
//  4. Children: a complete child replaces the incumbent when its z is
//     strictly greater; a partial child enters the frontier only when its
//     upper bound is strictly greater than the lower bound.
//  5. Global prune: after each expansion every frontier node whose bound is
//     ≤ the lower bound is dropped.
//  6. Termination: an empty frontier; the incumbent is optimal.
//
// Complexity:
//   - Worst case: all C(n, m) subsets.
//   - Per generated node: O(n² log n) for the bound.
//   - Memory: O(frontier·m).
package mdp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/diversity/instance"
)

// NodePolicy selects the frontier node expanded next.
type NodePolicy int

const (
	// SmallestBoundFirst expands the node with the smallest upper bound
	// (first found on ties). This is the order of the classic
	// BranchAndBound variant of this solver family.
	SmallestBoundFirst NodePolicy = iota

	// LargestBoundFirst expands the node with the largest upper bound
	// (first found on ties): conventional best-first search.
	LargestBoundFirst

	// DeepestFirst expands the node with the most chosen points
	// (first found on ties).
	DeepestFirst
)

var policyNames = [...]string{
	SmallestBoundFirst: "smallest-bound",
	LargestBoundFirst:  "largest-bound",
	DeepestFirst:       "deepest",
}

func (p NodePolicy) valid() bool { return p >= SmallestBoundFirst && p <= DeepestFirst }

// String returns the policy name accepted by ParseNodePolicy.
func (p NodePolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("NodePolicy(%d)", int(p))
	}

	return policyNames[p]
}

// ParseNodePolicy maps a name (case-insensitive) to a NodePolicy.
func ParseNodePolicy(name string) (NodePolicy, error) {
	for p, s := range policyNames {
		if strings.EqualFold(name, s) {
			return NodePolicy(p), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
}

// node is a partial solution of the search tree: chosen indices in
// ascending order plus the upper bound of every completion.
type node struct {
	chosen []int
	bound  float64
}

// BranchAndBound is the exact solver. Use NewBranchAndBound for the
// bound-ordered variant and NewDeepBranchAndBound for the depth-first one.
type BranchAndBound struct {
	seed      Solver
	generated int
	cfg       settings
}

// NewBranchAndBound returns an exact solver seeded by seed that expands
// nodes in SmallestBoundFirst order unless WithNodePolicy says otherwise.
//
// Errors: ErrNilSeeder.
func NewBranchAndBound(seed Solver, opts ...Option) (*BranchAndBound, error) {
	return newBranchAndBound(seed, SmallestBoundFirst, opts)
}

// NewDeepBranchAndBound returns an exact solver seeded by seed that always
// expands the deepest node first unless WithNodePolicy says otherwise.
//
// Errors: ErrNilSeeder.
func NewDeepBranchAndBound(seed Solver, opts ...Option) (*BranchAndBound, error) {
	return newBranchAndBound(seed, DeepestFirst, opts)
}

func newBranchAndBound(seed Solver, policy NodePolicy, opts []Option) (*BranchAndBound, error) {
	if seed == nil {
		return nil, ErrNilSeeder
	}

	cfg := newSettings(opts)
	if !cfg.hasPolicy {
		cfg.policy = policy
	}

	return &BranchAndBound{seed: seed, cfg: cfg}, nil
}

// Policy returns the node-selection policy in use.
func (b *BranchAndBound) Policy() NodePolicy { return b.cfg.policy }

// GeneratedNodes returns the number of child nodes formed by the last Solve.
func (b *BranchAndBound) GeneratedNodes() int { return b.generated }

// Solve returns an optimal solution whose size equals the seed's.
//
// Errors: ErrNilInstance, any seed error, ErrBadSize for an empty seed
// solution, ErrForeignSolution if the seed answered for another instance.
func (b *BranchAndBound) Solve(inst *instance.Instance) (Solution, error) {
	if inst == nil {
		return Solution{}, ErrNilInstance
	}
	b.generated = 0

	incumbent, err := b.seed.Solve(inst)
	if err != nil {
		return Solution{}, fmt.Errorf("seed solver: %w", err)
	}
	if err = validateOwned(inst, incumbent); err != nil {
		return Solution{}, err
	}
	var m = incumbent.Len()
	if m == 0 {
		return Solution{}, fmt.Errorf("seed solution is empty: %w", ErrBadSize)
	}

	var (
		n        = inst.Len()
		lower    = incumbent.Z()
		scratch  = newBoundScratch(n)
		frontier = []node{{chosen: nil, bound: upperBound(inst, nil, m, scratch)}}
	)
	b.cfg.log.Debug().
		Int("n", n).Int("m", m).
		Float64("lower", lower).
		Str("policy", b.cfg.policy.String()).
		Msg("branch and bound started")

	for len(frontier) > 0 {
		k := b.selectNode(frontier)
		parent := frontier[k]
		frontier = append(frontier[:k], frontier[k+1:]...)

		var (
			depth = len(parent.chosen)
			first = 0
			last  = n - m + depth
			j     int
		)
		if depth > 0 {
			first = parent.chosen[depth-1] + 1
		}
		for j = first; j <= last; j++ {
			b.generated++
			chosen := make([]int, depth+1)
			copy(chosen, parent.chosen)
			chosen[depth] = j

			if depth+1 == m {
				if z := sumPairs(inst, chosen); z > lower {
					lower = z
					incumbent = Solution{inst: inst, idx: chosen}
					b.cfg.log.Debug().Float64("z", z).Int("generated", b.generated).Msg("incumbent improved")
				}
				continue
			}
			if ub := upperBound(inst, chosen, m-depth-1, scratch); ub > lower {
				frontier = append(frontier, node{chosen: chosen, bound: ub})
			}
		}
		frontier = prune(frontier, lower)
	}
	b.cfg.log.Debug().Int("generated", b.generated).Float64("z", lower).Msg("branch and bound finished")

	return incumbent, nil
}

// selectNode returns the position of the next node to expand.
// frontier must be non-empty.
func (b *BranchAndBound) selectNode(frontier []node) int {
	var best = 0
	for k := 1; k < len(frontier); k++ {
		switch b.cfg.policy {
		case LargestBoundFirst:
			if frontier[k].bound > frontier[best].bound {
				best = k
			}
		case DeepestFirst:
			if len(frontier[k].chosen) > len(frontier[best].chosen) {
				best = k
			}
		default:
			if frontier[k].bound < frontier[best].bound {
				best = k
			}
		}
	}

	return best
}

// prune drops, in place, every node whose bound cannot beat lower.
func prune(frontier []node, lower float64) []node {
	kept := frontier[:0]
	for _, nd := range frontier {
		if nd.bound > lower {
			kept = append(kept, nd)
		}
	}

	return kept
}
