package entity

// PreviewRowLimit caps how many data rows a preview may hold, regardless of
// the size of the source file.
const PreviewRowLimit = 20

// Preview is the bounded sample of a tabular file returned to the caller so a
// mapping can be defined against it.
//
// Every row has exactly the same key set as Headers; source cells missing from
// a short row appear as empty strings.
type Preview struct {
	Headers   []string
	Rows      []map[string]string
	TotalRows int
}

// ValidationResult reports whether a preview looks like an order file.
//
// It is derived from a Preview on every request and has no identity of its
// own. Absence of expected fields makes it invalid, never an error.
type ValidationResult struct {
	Valid    bool
	Problems []string
}
