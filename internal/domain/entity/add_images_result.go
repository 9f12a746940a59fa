package entity

type AddImagesResult struct {
	AddedCount  int
	TotalImages int
}
