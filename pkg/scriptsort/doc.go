// Package scriptsort defines the public contract of the scriptsort tool:
// the constants governing classification, the types flowing through the
// scan/partition/assemble pipeline, the sentinel errors, and the small
// interfaces the internal packages implement.
package scriptsort
