//go:build domassert

package tree

// checkInvariants enables verification of the tree invariants after every mutation.
const checkInvariants = true
