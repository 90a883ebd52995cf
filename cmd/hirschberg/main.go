// Command hirschberg computes the optimal global alignment of the two
// sequences in a FASTA file using Hirschberg's linear-space
// divide-and-conquer algorithm.
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
	match := flag.Int("match-score", 1, "score for a matching pair of residues")
	mismatch := flag.Int("mismatch-score", -1, "score for a mismatching pair of residues")
	gap := flag.Int("gap-score", -3, "score for a gap")
	flag.Parse()

	if *filename == "" {
		flag.Usage()
		os.Exit(1)
	}

	seq1, seq2, err := fastaio.ReadPair(*filename)
	if err != nil {
		log.Fatalf("hirschberg: %v", err)
	}

	aligner := align.HirschbergAligner{
		Match:    int32(*match),
		Mismatch: int32(*mismatch),
		Gap:      int32(*gap),
	}
	res, err := aligner.Align(seq1.Data(), seq2.Data())
	if err != nil {
		log.Fatalf("hirschberg: %v", err)
	}

	fmt.Printf("Hirschberg score is: %d\n", res.Score)
	fmt.Println()
	fmt.Println("Aligned sequences:")
	fmt.Println(string(res.Triple.Top))
	fmt.Println(string(res.Triple.Diff))
	fmt.Println(string(res.Triple.Bottom))
}
