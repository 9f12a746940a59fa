package dto

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AlbumResponse struct {
	Response
	Album AlbumView `json:"album"`
}

type AddImagesResponse struct {
	Response
	AddedCount  int `json:"addedCount"`
	TotalImages int `json:"totalImages"`
}
