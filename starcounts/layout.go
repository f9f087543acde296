// Package starcounts reads per-sample gene quantification files as produced
// by the GDC STAR counts / HTSeq-FPKM workflows: tab-separated rows with a
// handful of comment and summary lines mixed in.
package starcounts

import "strings"

// Layout names the fixed columns of a quantification file and the line
// prefixes that mark non-data rows.
type Layout struct {
	Delimiter     string
	SkipPrefixes  []string
	MinFields     int
	ColGeneSymbol int
	ColValue      int
}

// GDCGeneExpression is the augmented STAR gene counts format distributed by
// the GDC. The N_* rows are STAR's unassigned-read summary counters and
// gene_id marks the header row; neither is expression data.
var GDCGeneExpression = Layout{
	Delimiter: "\t",
	SkipPrefixes: []string{
		"#",
		"N_unmapped",
		"N_multimapping",
		"N_noFeature",
		"N_ambiguous",
		"gene_id",
	},
	MinFields:     8,
	ColGeneSymbol: 1,
	ColValue:      7,
}

// Layouts is keyed by the name accepted on the command line.
var Layouts = map[string]Layout{
	"GDC": GDCGeneExpression,
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for name := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		i++
	}

	return b.String()
}
