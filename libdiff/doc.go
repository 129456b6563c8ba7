// Package libdiff computes the changes between two IR documents.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
// Dict members are matched by key and list elements by a summary of their
// type and scalar value, both using rune diffs from diffmatchpatch.  A
// moved dict key shows up as a delete and an insert.
package libdiff
