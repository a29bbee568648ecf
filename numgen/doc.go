// Package numgen enumerates every positive integer with at most n decimal
// digits, as strings, by backtracking over a fixed digit buffer.
//
// What:
//
//   - Walk fills positions left to right with '0'..'9'. At each leaf the
//     leading zeros are stripped and the all-zero leaf is skipped, so the
//     visit order is 1, 2, ..., 10^n-1.
//   - Enumerate collects the same sequence into a slice.
//
// Why strings:
//
//   - The digit count is not bounded by the width of an int; Walk accepts
//     up to MaxDigits positions and the callback may stop early.
//
// Complexity:
//
//   - Time O(n·10^n); Walk memory O(n), Enumerate O(n·10^n).
//
// Errors:
//
//   - ErrDigits: n < 0, n > MaxDigits for Walk, or n > MaxEnumerate for
//     Enumerate.
package numgen
