package presentation

const (
	AuthKey      = "Authorization"
	TypeKey      = "Content-Type"
	BearerScheme = "Bearer"
	ReasonTag    = "X-Reason"

	SlugParam  = "slug"
	IndexParam = "index"

	ImagesField = "images"
)
