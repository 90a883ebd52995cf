// Command banded computes the optimal global alignment of the two
// sequences in a FASTA file using a diagonal band of the dynamic
// programming matrix.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/evolbioinf/align"
	"github.com/evolbioinf/align/internal/fastaio"
)

func main() {
	filename := flag.String("filename", "", "FASTA input file (required)")
	width := flag.Uint("width", 0, "band width: max |row-col| offset from the main diagonal (required)")
	match := flag.Int("match-score", 1, "score for a matching pair of residues")
	mismatch := flag.Int("mismatch-score", -1, "score for a mismatching pair of residues")
	gap := flag.Int("gap-score", -3, "score for a gap")
	flag.Parse()

	widthSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "width" {
			widthSet = true
		}
	})
	if *filename == "" || !widthSet {
		flag.Usage()
		os.Exit(1)
	}

	seq1, seq2, err := fastaio.ReadPair(*filename)
	if err != nil {
		log.Fatalf("banded: %v", err)
	}

	aligner := align.BandedAligner{
		Match:    int32(*match),
		Mismatch: int32(*mismatch),
		Gap:      int32(*gap),
		Width:    int(*width),
	}
	res, err := aligner.Align(seq1.Data(), seq2.Data())
	if err != nil {
		log.Fatalf("banded: %v", err)
	}

	fmt.Printf("The score for optimal alignment is: %d\n", res.Score)
	fmt.Println()
	fmt.Println("Aligned sequences:")
	fmt.Println(string(res.Triple.Top))
	fmt.Println(string(res.Triple.Diff))
	fmt.Println(string(res.Triple.Bottom))
}
