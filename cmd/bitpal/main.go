// Command bitpal computes the optimal global alignment score of the two
// sequences in a FASTA file using the bit-parallel BitPAl engine. Scoring
// is fixed at match=+1, mismatch=-1, gap=-3; unlike the other front-ends
// it does not accept score flags.
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
	flag.Parse()

	if *filename == "" {
		flag.Usage()
		os.Exit(1)
	}

	seq1, seq2, err := fastaio.ReadPair(*filename)
	if err != nil {
		log.Fatalf("bitpal: %v", err)
	}

	res, err := align.BitPAlAligner{}.Align(seq1.Data(), seq2.Data())
	if err != nil {
		log.Fatalf("bitpal: %v", err)
	}

	fmt.Println(res.Score)
}
