package simulation

import "golang.org/x/exp/rand"

// Assignment marks which validators are corrupted in a single scenario.
// A validator is identified only by its position in the assignment.
type Assignment []bool

// CountCorrupted returns the number of corrupted validators in the assignment.
func (a Assignment) CountCorrupted() int {
	count := 0
	for _, corrupted := range a {
		if corrupted {
			count++
		}
	}
	return count
}

// NewAssignment creates a corruption assignment of length numValidators with a
// uniformly random subset of exactly numCorrupted validators marked corrupted.
// Every subset of that size is equally likely. If numCorrupted >= numValidators,
// the whole population is corrupted.
func NewAssignment(rnd *rand.Rand, numValidators, numCorrupted int) Assignment {
	assignment := make(Assignment, numValidators)

	if numCorrupted >= numValidators {
		for i := range assignment {
			assignment[i] = true
		}
		return assignment
	}

	for _, i := range rnd.Perm(numValidators)[:numCorrupted] {
		assignment[i] = true
	}
	return assignment
}
