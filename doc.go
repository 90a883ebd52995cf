// Package align implements data structures, methods, and functions for
// computing optimal global pairwise alignments of two byte sequences under
// a linear gap-cost scoring scheme.
//
// Four engines compute the same score for a given input under different
// space/time trade-offs: FullMatrix (classical O(mn) dynamic programming),
// Banded (DP restricted to a diagonal band), Hirschberg (linear-space
// divide-and-conquer reconstruction), and BitPAl (bit-parallel score-only
// computation for the fixed match=+1, mismatch=-1, gap=-3 scoring). All
// four share the Aligner interface and the recurrence described in each
// engine's file.
package align
