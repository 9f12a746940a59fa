package entity

type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	VersionID   string `json:"version_id"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
