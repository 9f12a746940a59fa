package dto

// UploadFile is one submitted image, buffered in memory.
type UploadFile struct {
	Name string
	Data []byte
}
