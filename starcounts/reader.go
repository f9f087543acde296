package starcounts

import (
	"bufio"
	"io"
	"strings"
)

// Row is one data line of a quantification file. The value is carried
// through verbatim from the source line, with no numeric interpretation.
type Row struct {
	GeneSymbol string
	Value      string
}

// Reader yields the data rows of one quantification file, in file order. It
// consumes the underlying stream and cannot be restarted.
type Reader struct {
	layout Layout
	r      *bufio.Reader
	done   bool
}

func NewReader(r io.Reader) *Reader {
	return NewReaderLayout(r, GDCGeneExpression)
}

func NewReaderLayout(r io.Reader, layout Layout) *Reader {
	return &Reader{
		layout: layout,
		r:      bufio.NewReader(r),
	}
}

// Read returns the next data row, or io.EOF once the file is exhausted.
// Comment and summary lines, and lines with fewer than the layout's minimum
// field count, are skipped. Short lines draw no warning: trailing blank
// lines and the like are routine noise in these files.
func (r *Reader) Read() (Row, error) {
	for {
		if r.done {
			return Row{}, io.EOF
		}

		line, err := r.r.ReadString('\n')
		if err == io.EOF {
			// The final line may lack a trailing newline; process what we
			// have and report EOF on the next call.
			r.done = true
		} else if err != nil {
			return Row{}, err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if r.skippable(line) {
			continue
		}

		fields := strings.Split(line, r.layout.Delimiter)
		if len(fields) < r.layout.MinFields {
			continue
		}

		return Row{
			GeneSymbol: fields[r.layout.ColGeneSymbol],
			Value:      fields[r.layout.ColValue],
		}, nil
	}
}

func (r *Reader) skippable(line string) bool {
	for _, prefix := range r.layout.SkipPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}
