package matrix

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

const (
	// GeneColumnLabel heads column 0 of the output.
	GeneColumnLabel = "GeneSymbol"

	// Sentinel fills any cell with no recorded value.
	Sentinel = "NA"
)

// Write serializes the accumulator as a header line plus one line per gene.
// Both the sample columns and the gene rows are sorted bytewise, so the
// output is independent of directory enumeration and metadata order.
func Write(w io.Writer, acc *Accumulator) error {
	bw := bufio.NewWriter(w)

	samples := acc.Samples()
	genes := acc.Genes()

	row := make([]string, 0, len(samples)+1)

	row = append(row, GeneColumnLabel)
	row = append(row, samples...)
	if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
		return pfx.Err(err)
	}

	for _, gene := range genes {
		row = row[:0]
		row = append(row, gene)
		for _, sample := range samples {
			if value, ok := acc.Value(gene, sample); ok {
				row = append(row, value)
			} else {
				row = append(row, Sentinel)
			}
		}

		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return pfx.Err(err)
		}
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// WriteFile writes the matrix to path, creating or truncating it. There is
// no partial-output recovery: a failure partway leaves whatever the
// underlying writes produced.
func WriteFile(path string, acc *Accumulator) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return Write(f, acc)
}
