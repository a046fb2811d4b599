// Package ordering implements the three-way classification and sorting of
// directory entries.
//
// # Classification
//
// A filename qualifies as "ordered" only when it begins with the literal
// prefix "ordered.". The digits immediately following the prefix are parsed
// as a base-10 non-negative integer using longest-prefix matching: parsing
// stops at the first non-digit character, so "ordered.07.setup" carries
// order number 7. A name with no digits after the prefix, or whose digits
// overflow the int range, is treated as unordered.
//
// Entries are bucketed into exactly three partitions against a positive
// cutoff (default 50):
//
//	low        0 <= order number < cutoff
//	unordered  no order number
//	high       order number >= cutoff
//
// # Sorting
//
// One total-order comparator serves all partitions: order number ascending,
// then byte-wise filename comparison. Entries without an order number all
// share the same sentinel, so within the unordered partition the comparator
// degenerates to a pure name sort.
package ordering
