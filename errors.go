package align

import "errors"

// Sentinel errors returned by the engines and by the FASTA reading glue
// in front of them. Callers distinguish them with errors.Is; cmd/*
// front-ends print them to stderr through log.Fatalf, prefixed with the
// command name.
var (
	// ErrIOFailure is returned when a FASTA input file cannot be opened
	// or read.
	ErrIOFailure = errors.New("align: could not read input file")

	// ErrParseFailure is returned when a FASTA input does not yield
	// exactly two sequences.
	ErrParseFailure = errors.New("align: fasta input did not yield two sequences")

	// ErrInputTooLong is returned by the BitPAl engine when both
	// sequences exceed the 64-bit word width.
	ErrInputTooLong = errors.New("align: both sequences exceed the bitpal word width of 64")

	// ErrCornerNotComputed is returned by the Banded engine when the
	// band width is too small for the band to reach the bottom-right
	// corner of the score matrix.
	ErrCornerNotComputed = errors.New("align: band width too small to reach the alignment corner")
)
