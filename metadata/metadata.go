// Package metadata builds the filename → sample ID index that decides which
// files in the data directory belong to the run. The canonical source is the
// GDC metadata JSON export; a GDC sample sheet is accepted as an alternative.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

// FilenameIndex maps an on-disk filename to the sample ID whose expression
// values that file holds. Built once, read-only afterward.
type FilenameIndex map[string]string

// AssociatedEntity is one entry of a metadata record's associated_entities
// array. Only the submitter ID is of interest here.
type AssociatedEntity struct {
	EntitySubmitterID null.String `json:"entity_submitter_id"`
}

// FileRecord is one entry of the GDC metadata array. Both fields are
// optional on the wire: portal exports routinely include records (e.g.
// annotations) that carry no associated entity at all.
type FileRecord struct {
	FileName           null.String        `json:"file_name"`
	AssociatedEntities []AssociatedEntity `json:"associated_entities"`
}

// SampleID resolves the record's sample ID from the first associated entity.
// The second return is false whenever any link of the chain is absent.
func (r FileRecord) SampleID() (string, bool) {
	if len(r.AssociatedEntities) < 1 {
		return "", false
	}

	id := r.AssociatedEntities[0].EntitySubmitterID
	if !id.Valid || id.String == "" {
		return "", false
	}

	return id.String, true
}

// Load parses a GDC metadata JSON document and returns the FilenameIndex.
// Records missing the filename or a resolvable sample ID are skipped with a
// warning. An index with zero usable mappings is an error: it means the
// metadata does not describe this dataset at all, and the run would silently
// produce an empty matrix.
func Load(r io.Reader) (FilenameIndex, error) {
	var records []FileRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, pfx.Err(fmt.Errorf("metadata is not a valid JSON array: %s", err))
	}

	index := make(FilenameIndex)
	for i, record := range records {
		if !record.FileName.Valid || record.FileName.String == "" {
			log.Printf("Skipping metadata record %d: no file_name\n", i)
			continue
		}

		sampleID, ok := record.SampleID()
		if !ok {
			log.Printf("Skipping metadata record %d (%s): no associated entity with an entity_submitter_id\n", i, record.FileName.String)
			continue
		}

		index[record.FileName.String] = sampleID
	}

	if len(index) == 0 {
		return nil, pfx.Err(fmt.Errorf("metadata yielded zero usable file_name → sample ID mappings"))
	}

	return index, nil
}
