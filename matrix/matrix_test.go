package matrix

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteSortedWithSentinel(t *testing.T) {
	acc := NewAccumulator()

	// Deliberately out of order; the writer must sort.
	acc.AddSample("S2")
	acc.AddSample("S1")
	acc.Record("GENEB", "S2", "2.2")
	acc.Record("GENEA", "S1", "1.1")
	acc.Record("GENEA", "S2", "9.9")

	buf := &bytes.Buffer{}
	if err := Write(buf, acc); err != nil {
		t.Fatal(err)
	}

	expected := "GeneSymbol\tS1\tS2\n" +
		"GENEA\t1.1\t9.9\n" +
		"GENEB\tNA\t2.2\n"

	if buf.String() != expected {
		t.Fatalf("Got:\n%s\nExpected:\n%s", buf.String(), expected)
	}
}

func TestWriteSingleCellScenario(t *testing.T) {
	acc := NewAccumulator()
	acc.AddSample("S1")
	acc.Record("GENE2", "S1", "12.5")

	buf := &bytes.Buffer{}
	if err := Write(buf, acc); err != nil {
		t.Fatal(err)
	}

	expected := "GeneSymbol\tS1\nGENE2\t12.5\n"
	if buf.String() != expected {
		t.Fatalf("Got %q, expected %q", buf.String(), expected)
	}
}

func TestWriteHeaderOnlyWhenNoGenes(t *testing.T) {
	acc := NewAccumulator()
	acc.AddSample("S1")

	buf := &bytes.Buffer{}
	if err := Write(buf, acc); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "GeneSymbol\tS1\n" {
		t.Fatalf("Got %q, expected a bare header", buf.String())
	}
}

func TestLastWriteWins(t *testing.T) {
	acc := NewAccumulator()
	acc.AddSample("S1")
	acc.Record("GENE1", "S1", "1")
	acc.Record("GENE1", "S1", "2")

	if value, ok := acc.Value("GENE1", "S1"); !ok || value != "2" {
		t.Fatalf("Got %q (%v), expected the later write 2", value, ok)
	}
}

func TestDuplicateSampleColumnsPreserved(t *testing.T) {
	acc := NewAccumulator()

	if prior := acc.AddSample("S1"); prior != 0 {
		t.Fatalf("First AddSample reported %d prior occurrences", prior)
	}
	if prior := acc.AddSample("S1"); prior != 1 {
		t.Fatalf("Second AddSample reported %d prior occurrences, expected 1", prior)
	}
	acc.Record("GENE1", "S1", "5")

	buf := &bytes.Buffer{}
	if err := Write(buf, acc); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "GeneSymbol\tS1\tS1" {
		t.Errorf("Header %q, expected a repeated S1 column", lines[0])
	}
	if lines[1] != "GENE1\t5\t5" {
		t.Errorf("Row %q, expected the same value in both columns", lines[1])
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	acc := NewAccumulator()
	acc.AddSample("S3")
	acc.AddSample("S1")
	acc.AddSample("S2")
	acc.Record("GENEC", "S1", "1")
	acc.Record("GENEA", "S3", "2")
	acc.Record("GENEB", "S2", "3")

	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	if err := Write(first, acc); err != nil {
		t.Fatal(err)
	}
	if err := Write(second, acc); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("Two writes of the same accumulator differ")
	}
}
