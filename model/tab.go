package model

// Cell addresses one entry of a sparse tab grid.
type Cell struct {
	String int
	Col    int
}

// Section is one contiguous block of tab lines: sparse fret events keyed by
// (string, column) plus the maximum column index, which fixes rendered width.
type Section struct {
	Events map[Cell]int
	MaxCol int
}

// Part is one input file's contribution to the merge. Immutable once parsed.
type Part struct {
	Name     string
	Role     Role
	Labels   []string
	Tuning   Tuning
	Sections []Section
}

// CellValue is a placed fret or the unplayable marker.
type CellValue struct {
	Fret       int
	Unplayable bool
}

// MergedSection is the target-tuning-indexed grid built by the merge engine,
// consumed once by the renderer.
type MergedSection struct {
	Cells  map[Cell]CellValue
	MaxCol int
}

// Placement is a string/fret position chosen by the allocator.
type Placement struct {
	String int
	Fret   int
}
