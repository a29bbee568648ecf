// Package partition reorders a slice in place so that every element
// satisfying a predicate precedes every element that does not.
//
// What:
//
//   - Partition is a two-pointer sweep: the left cursor skips kept
//     elements, the right cursor skips rejected ones, and the pair is
//     swapped when both stop.
//   - OddsFirst is Partition with an "is odd" predicate over any integer
//     type, negatives included.
//
// Complexity:
//
//   - Time O(n), at most n predicate calls per cursor; memory O(1).
//
// The result is not stable: relative order inside each half may change.
// Use slices.SortStableFunc when order must be kept.
package partition
