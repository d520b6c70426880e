package simulation

import "fmt"

// SplitIntoQuorums splits an assignment into contiguous quorums of quorumSize
// validators each, one quorum per layer. The quorums are subslices of the
// assignment: they cover it in order with no gaps and no overlap.
//
// The length of the assignment must be divisible by quorumSize. This holds for
// any assignment produced from a validated Config, so a violation means the
// caller constructed the assignment itself, and we panic rather than truncate.
func SplitIntoQuorums(assignment Assignment, quorumSize int) []Assignment {
	if len(assignment)%quorumSize != 0 {
		panic(fmt.Sprintf("assignment length %d is not divisible by quorum size %d", len(assignment), quorumSize))
	}

	quorums := make([]Assignment, 0, len(assignment)/quorumSize)
	for i := 0; i < len(assignment); i += quorumSize {
		quorums = append(quorums, assignment[i:i+quorumSize])
	}
	return quorums
}
