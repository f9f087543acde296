package metadata

import (
	"strings"
	"testing"
)

func TestLoadSampleSheetTab(t *testing.T) {
	sheet := "File ID\tFile Name\tData Category\tProject ID\tCase ID\tSample ID\tSample Type\n" +
		"f1\ta.tsv\tTranscriptome Profiling\tTCGA-THCA\tC1\tS1\tPrimary Tumor\n" +
		"f2\tb.tsv\tTranscriptome Profiling\tTCGA-THCA\tC2\tS2\tSolid Tissue Normal\n" +
		"f3\t\tTranscriptome Profiling\tTCGA-THCA\tC3\tS3\tPrimary Tumor\n" +
		"f4\td.tsv\tTranscriptome Profiling\tTCGA-THCA\tC4\t\tPrimary Tumor\n"

	index, err := LoadSampleSheet(strings.NewReader(sheet))
	if err != nil {
		t.Fatal(err)
	}

	if len(index) != 2 {
		t.Fatalf("Got %d mappings, expected 2: %+v", len(index), index)
	}
	if index["a.tsv"] != "S1" || index["b.tsv"] != "S2" {
		t.Errorf("Mismatch: %+v", index)
	}
}

func TestLoadSampleSheetComma(t *testing.T) {
	sheet := "File Name,Sample ID\n" +
		"a.tsv,S1\n" +
		"b.tsv,S2\n"

	index, err := LoadSampleSheet(strings.NewReader(sheet))
	if err != nil {
		t.Fatal(err)
	}

	if index["a.tsv"] != "S1" || index["b.tsv"] != "S2" {
		t.Errorf("Mismatch: %+v", index)
	}
}

func TestLoadSampleSheetMatchesJSONMetadata(t *testing.T) {
	doc := `[
		{"file_name": "a.tsv", "associated_entities": [{"entity_submitter_id": "S1"}]},
		{"file_name": "b.tsv", "associated_entities": [{"entity_submitter_id": "S2"}]}
	]`
	sheet := "File Name\tSample ID\na.tsv\tS1\nb.tsv\tS2\n"

	fromJSON, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	fromSheet, err := LoadSampleSheet(strings.NewReader(sheet))
	if err != nil {
		t.Fatal(err)
	}

	if len(fromJSON) != len(fromSheet) {
		t.Fatalf("JSON produced %d mappings, sheet produced %d", len(fromJSON), len(fromSheet))
	}
	for name, id := range fromJSON {
		if fromSheet[name] != id {
			t.Errorf("%s: JSON resolved %q, sheet resolved %q", name, id, fromSheet[name])
		}
	}
}

func TestLoadSampleSheetRejectsEmpty(t *testing.T) {
	sheet := "File Name\tSample ID\n"

	if _, err := LoadSampleSheet(strings.NewReader(sheet)); err == nil {
		t.Error("Expected an error for a sheet with no usable rows")
	}
}
