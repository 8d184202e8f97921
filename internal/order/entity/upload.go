package entity

// UploadedFile is a spreadsheet accepted by the gateway and persisted under a
// generated identifier. The identifier doubles as the stored file name stem.
type UploadedFile struct {
	ID           string
	OriginalName string
	Path         string
	Ext          string
}
