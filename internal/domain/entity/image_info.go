package entity

type ImageInfo struct {
	MimeType string
	Width    int
	Height   int
}

func (i ImageInfo) IsJPEG() bool { return i.MimeType == "image/jpeg" }
