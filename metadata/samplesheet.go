package metadata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// sampleSheetRow maps the GDC sample sheet's header names. The sheet carries
// more columns (project, case, sample type) that the index has no use for.
type sampleSheetRow struct {
	FileName string `csv:"File Name"`
	SampleID string `csv:"Sample ID"`
}

// LoadSampleSheet builds a FilenameIndex from a GDC sample sheet, the
// tab-separated mapping the portal exports alongside the JSON metadata. Some
// exports are comma-separated instead, so the delimiter is sniffed rather
// than assumed. The same skip-with-warning and fatal-on-empty rules as Load
// apply.
func LoadSampleSheet(r io.Reader) (FilenameIndex, error) {
	fileBytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	delim := determineDelimiter(bytes.NewReader(fileBytes))

	// Tell gocsv to split on the sniffed delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delim
		cr.LazyQuotes = true
		return cr
	})

	rows := []*sampleSheetRow{}
	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		return nil, pfx.Err(fmt.Errorf("sample sheet is not parseable: %s", err))
	}

	index := make(FilenameIndex)
	for i, row := range rows {
		if row.FileName == "" {
			log.Printf("Skipping sample sheet row %d: no File Name\n", i)
			continue
		}
		if row.SampleID == "" {
			log.Printf("Skipping sample sheet row %d (%s): no Sample ID\n", i, row.FileName)
			continue
		}

		index[row.FileName] = row.SampleID
	}

	if len(index) == 0 {
		return nil, pfx.Err(fmt.Errorf("sample sheet yielded zero usable File Name → Sample ID mappings"))
	}

	return index, nil
}

// determineDelimiter returns the single most likely rune delimiting the
// values in the reader, defaulting to tab (the documented sheet format).
func determineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
