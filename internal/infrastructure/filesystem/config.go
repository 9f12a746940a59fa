package filesystem

type Config struct {
	PostsDir  string `yaml:"posts_dir"`
	AlbumsDir string `yaml:"albums_dir"`
	OrderFile string `yaml:"order_file"`
}
