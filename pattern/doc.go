// Package pattern matches whole strings against a minimal regular-expression
// dialect: '.' for any single rune and 'x*' for zero or more of the
// preceding element.
//
// Match fills a boolean table dp[i][j] = "text[i:] matches pattern[j:]"
// bottom-up, so no subproblem is solved twice.
//
// Complexity: O(n×m) time and memory, n and m the rune lengths of text and pattern.
package pattern
