package config

// Dxfile represents the structure of the dxpatch.yaml configuration file.
type Dxfile struct {
	Version    string   `yaml:"version"`
	Toolchain  string   `yaml:"toolchain"`
	GCCVersion string   `yaml:"gcc_version"`
	BoardsDir  string   `yaml:"boards_dir"`
	Template   string   `yaml:"template"`
	IndexURL   string   `yaml:"index_url"`
	Packs      []string `yaml:"packs"`
	Sources    []string `yaml:"sources"`
	CacheDir   string   `yaml:"cache_dir"`
	Provision  *bool    `yaml:"provision"`
}
