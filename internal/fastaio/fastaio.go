// Package fastaio reads exactly two FASTA records from a file: a line
// starting with '>' begins a new record;
// every following non-header line is payload, concatenated with newlines
// stripped, until the next header or end of file. Do not guess when no
// header line is present at all; that is treated as a parse failure
// rather than silently splitting the file in two.
package fastaio

import (
	"bufio"
	"os"

	"github.com/evolbioinf/fasta"

	"github.com/evolbioinf/align"
)

// ReadPair opens path and scans it for exactly two FASTA records,
// returning them as *fasta.Sequence values (the same type the module's
// teacher, EvolBioInf/pal, builds its alignments from). It fails with
// align.ErrIOFailure if the file cannot be opened or read, and with
// align.ErrParseFailure if the file does not yield exactly two records.
func ReadPair(path string) (seq1, seq2 *fasta.Sequence, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return nil, nil, align.ErrIOFailure
	}
	defer f.Close()

	var headers []string
	var payloads [][]byte
	haveHeader := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > 0 && line[0] == '>' {
			headers = append(headers, string(line[1:]))
			payloads = append(payloads, nil)
			haveHeader = true
			continue
		}
		if !haveHeader {
			// No header seen yet: nothing to accumulate into.
			continue
		}
		last := len(payloads) - 1
		payloads[last] = append(payloads[last], line...)
	}
	if scanErr := sc.Err(); scanErr != nil {
		return nil, nil, align.ErrIOFailure
	}

	if !haveHeader || len(payloads) != 2 {
		return nil, nil, align.ErrParseFailure
	}

	seq1 = fasta.NewSequence(headers[0], payloads[0])
	seq2 = fasta.NewSequence(headers[1], payloads[1])
	return seq1, seq2, nil
}
