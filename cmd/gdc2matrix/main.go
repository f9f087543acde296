// gdc2matrix merges per-sample GDC gene expression quantification files into
// one gene × sample TSV matrix. The metadata JSON (or sample sheet) decides
// which files in the data directory belong to the run and which sample ID
// each one represents; everything else in the directory is ignored.
package main

import (
	"context"
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/carbocation/gdcmatrix"
	_ "github.com/carbocation/gdcmatrix/compileinfoprint"
	"github.com/carbocation/gdcmatrix/matrix"
	"github.com/carbocation/gdcmatrix/metadata"
	"github.com/carbocation/gdcmatrix/starcounts"
)

var client *storage.Client

func main() {
	var metadataFile, sampleSheet, dataDir, outputFile, layoutName string
	flag.StringVar(&metadataFile, "metadata", "metadata.json", "Path to the GDC metadata JSON export. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&sampleSheet, "samplesheet", "", "Path to a GDC sample sheet, as an alternative to --metadata. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&dataDir, "dir", "file/", "Path to the directory holding the quantification files named by the metadata")
	flag.StringVar(&outputFile, "output", "fpkm_matrix.tsv", "Path to the output matrix TSV")
	flag.StringVar(&layoutName, "layout", "GDC", "Quantification file layout. Options: "+starcounts.LayoutNames())
	flag.Parse()

	metadataSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "metadata" {
			metadataSet = true
		}
	})
	if sampleSheet != "" && metadataSet {
		flag.Usage()
		log.Fatalln("Pass either --metadata or --samplesheet, not both")
	}

	layout, exists := starcounts.Layouts[layoutName]
	if !exists {
		flag.Usage()
		log.Fatalf("Layout %s is not known. Options: %s\n", layoutName, starcounts.LayoutNames())
	}

	for _, path := range []*string{&metadataFile, &sampleSheet, &dataDir, &outputFile} {
		expanded, err := gdcmatrix.ExpandHome(*path)
		if err != nil {
			log.Fatalln(err)
		}
		*path = expanded
	}

	if strings.HasPrefix(metadataFile, "gs://") ||
		strings.HasPrefix(sampleSheet, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	index, err := loadIndex(metadataFile, sampleSheet)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Loaded %d filename → sample ID mappings\n", len(index))

	acc := matrix.NewAccumulator()
	if err := mergeDirectory(dataDir, index, layout, acc); err != nil {
		log.Fatalln(err)
	}

	log.Printf("Accumulated %d genes across %d samples\n", acc.NumGenes(), acc.NumSamples())

	if err := matrix.WriteFile(outputFile, acc); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Wrote matrix to %s\n", outputFile)
}

func loadIndex(metadataFile, sampleSheet string) (metadata.FilenameIndex, error) {
	if sampleSheet != "" {
		log.Printf("Loading sample sheet from %s\n", sampleSheet)

		r, err := gdcmatrix.MaybeOpenFromGoogleStorage(sampleSheet, client)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		return metadata.LoadSampleSheet(r)
	}

	log.Printf("Loading metadata from %s\n", metadataFile)

	r, err := gdcmatrix.MaybeOpenFromGoogleStorage(metadataFile, client)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return metadata.Load(r)
}

// mergeDirectory scans dataDir in filesystem-reported order and parses every
// entry whose name appears in the index. Unmatched names are the common case
// (metadata usually describes a subset of the directory) and are skipped
// silently. A matched file that cannot be opened is skipped with a warning:
// its sample simply does not appear in the output.
func mergeDirectory(dataDir string, index metadata.FilenameIndex, layout starcounts.Layout, acc *matrix.Accumulator) error {
	files, err := ioutil.ReadDir(dataDir)
	if err != nil {
		return err
	}

	matched := 0
	for _, file := range files {
		sampleID, exists := index[file.Name()]
		if !exists {
			continue
		}

		path := filepath.Join(dataDir, file.Name())
		if err := mergeFile(path, sampleID, layout, acc); err != nil {
			log.Printf("Skipping %s (sample %s): %v\n", path, sampleID, err)
			continue
		}
		matched++
	}

	if matched == 0 {
		log.Println("No files in", dataDir, "matched the metadata; the matrix will be empty")
	}

	return nil
}

func mergeFile(path, sampleID string, layout starcounts.Layout, acc *matrix.Accumulator) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// GDC delivers these gzip-compressed; uncompressed files pass through.
	r, err := gdcmatrix.MaybeDecompress(f)
	if err != nil {
		return err
	}

	if prior := acc.AddSample(sampleID); prior > 0 {
		log.Printf("Sample %s already seen %d time(s); %s will add a duplicate column\n", sampleID, prior, path)
	}

	rows := 0
	counts := starcounts.NewReaderLayout(r, layout)
	for {
		row, err := counts.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			// The sample stays in the output with whatever rows were read
			// before the stream went bad.
			log.Printf("Stopped reading %s early: %v\n", path, err)
			break
		}

		acc.Record(row.GeneSymbol, sampleID, row.Value)
		rows++
	}

	log.Printf("Parsed sample %s from %s (%d data rows)\n", sampleID, path, rows)

	return nil
}
