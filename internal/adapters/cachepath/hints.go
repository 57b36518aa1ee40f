package cachepath

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// yarnrcHint reads cacheFolder from the project's .yarnrc.yml.
func yarnrcHint(d *Detector, workdir string) (string, bool) {
	//nolint:gosec // path is inside the working directory
	data, err := os.ReadFile(filepath.Join(workdir, ".yarnrc.yml"))
	if err != nil {
		return "", false
	}

	var rc struct {
		CacheFolder string `yaml:"cacheFolder"`
	}
	if err := yaml.Unmarshal(data, &rc); err != nil || rc.CacheFolder == "" {
		return "", false
	}
	return d.absolute(rc.CacheFolder, workdir), true
}

// bunfigHint reads [install.cache] dir from the project's bunfig.toml.
func bunfigHint(d *Detector, workdir string) (string, bool) {
	var cfg struct {
		Install struct {
			Cache struct {
				Dir string `toml:"dir"`
			} `toml:"cache"`
		} `toml:"install"`
	}
	if _, err := toml.DecodeFile(filepath.Join(workdir, "bunfig.toml"), &cfg); err != nil {
		return "", false
	}
	if cfg.Install.Cache.Dir == "" {
		return "", false
	}
	return d.absolute(cfg.Install.Cache.Dir, workdir), true
}
