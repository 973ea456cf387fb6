//go:build !domassert

package tree

const checkInvariants = false
