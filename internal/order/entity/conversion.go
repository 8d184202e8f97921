package entity

// RowError records a single data row that could not be mapped. Row is the
// 1-based index of the row within the source file's data rows.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ConversionResult is the outcome of one generation request. It is immutable
// after creation; the generated file is addressed by FileName from then on.
type ConversionResult struct {
	FileName      string
	ProcessedRows int
	RowErrors     []RowError
}
