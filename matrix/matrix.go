// Package matrix holds the sparse gene × sample expression table and writes
// it out as a dense, sorted TSV.
package matrix

import "sort"

// Accumulator is the single mutable context threaded through the pipeline:
// the sparse cell table, the gene set (the table's keys), and the order in
// which samples were processed. It is not safe for concurrent use; the
// pipeline is strictly sequential.
type Accumulator struct {
	cells       map[string]map[string]string // gene → sample → value
	sampleOrder []string
	sampleSeen  map[string]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		cells:      make(map[string]map[string]string),
		sampleSeen: make(map[string]int),
	}
}

// AddSample appends sampleID to the processing order and returns how many
// times it had been added before. Duplicates are preserved: two source files
// resolving to the same sample ID yield two columns in the output, a
// condition worth a warning upstream but not silent deduplication.
func (a *Accumulator) AddSample(sampleID string) int {
	prior := a.sampleSeen[sampleID]
	a.sampleSeen[sampleID]++
	a.sampleOrder = append(a.sampleOrder, sampleID)

	return prior
}

// Record sets the cell for (gene, sampleID). A repeated gene symbol within
// one sample's file lands on the same cell, and the last write wins.
func (a *Accumulator) Record(gene, sampleID, value string) {
	bySample, ok := a.cells[gene]
	if !ok {
		bySample = make(map[string]string)
		a.cells[gene] = bySample
	}

	bySample[sampleID] = value
}

// Value reports the stored cell for (gene, sampleID), if any.
func (a *Accumulator) Value(gene, sampleID string) (string, bool) {
	value, ok := a.cells[gene][sampleID]
	return value, ok
}

// Genes returns every gene symbol seen, sorted bytewise.
func (a *Accumulator) Genes() []string {
	genes := make([]string, 0, len(a.cells))
	for g := range a.cells {
		genes = append(genes, g)
	}
	sort.Strings(genes)

	return genes
}

// Samples returns the processing order sorted bytewise, duplicates included.
func (a *Accumulator) Samples() []string {
	samples := make([]string, len(a.sampleOrder))
	copy(samples, a.sampleOrder)
	sort.Strings(samples)

	return samples
}

// NumSamples counts processed files, not distinct sample IDs.
func (a *Accumulator) NumSamples() int {
	return len(a.sampleOrder)
}

func (a *Accumulator) NumGenes() int {
	return len(a.cells)
}
