// Package pipeline orchestrates one split run: read and validate the input
// CSV, clean fields, group institution names, build the two output relations,
// and write them atomically.
//
// Records are processed strictly in file order because cluster identifiers
// are assigned by first appearance and are part of the output contract;
// reordering the input changes the identifiers.
package pipeline
