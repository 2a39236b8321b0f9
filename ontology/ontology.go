// Package ontology defines the seam to the ontology-DAG collaborator: the
// subsystem that maps genes to ontology terms and propagates annotations
// through the directed acyclic graph per the true-path rule.  The graph
// traversal itself lives behind the Annotator interface; this module only
// consumes its flattened output.
package ontology

// Term is one ontology term.
type Term struct {
	// ID is the term accession (e.g. "GO:0006915").
	ID string
	// Name is the human-readable term name.
	Name string
}

// PathMode selects how annotations propagate along DAG paths when a term is
// reachable from a gene through more than one path.
type PathMode int

const (
	// PathAll propagates along every path to the root.
	PathAll PathMode = iota
	// PathShortest propagates only along a shortest path.
	PathShortest
	// PathLongest propagates only along a longest path.
	PathLongest
)

// Annotator supplies propagated term annotations.  Implementations own the
// DAG; callers see only gene-to-term mappings with propagation already
// applied.
type Annotator interface {
	// Annotations returns the terms annotating gene, including inherited
	// ancestor terms per the true-path rule under the given mode.
	Annotations(gene string, mode PathMode) ([]Term, error)
	// Genes returns the genes annotated with term, including those
	// annotating any descendant term.
	Genes(term string, mode PathMode) ([]string, error)
}
