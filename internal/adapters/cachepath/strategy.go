package cachepath

import (
	"encoding/json"
	"path/filepath"

	"go.trai.ch/setupjs/internal/core/domain"
)

// strategy describes how to find one package manager's cache.
type strategy struct {
	query    domain.Command
	parse    func(out string) string
	hint     func(d *Detector, workdir string) (string, bool)
	fallback func(d *Detector) (string, bool)
}

func strategyFor(pm domain.PackageManagerSpec) *strategy {
	switch pm.Name {
	case domain.PackageManagerNpm:
		return &strategy{
			query:    domain.Command{Name: "npm", Args: []string{"config", "get", "cache"}},
			fallback: npmDefault,
		}
	case domain.PackageManagerPnpm:
		return &strategy{
			query:    domain.Command{Name: "pnpm", Args: []string{"store", "path", "--silent"}},
			fallback: pnpmDefault,
		}
	case domain.PackageManagerYarn:
		if domain.IsYarnBerry(pm.Version) {
			return &strategy{
				query:    domain.Command{Name: "yarn", Args: []string{"config", "get", "cacheFolder"}},
				hint:     yarnrcHint,
				fallback: yarnBerryDefault,
			}
		}
		return &strategy{
			query:    domain.Command{Name: "yarn", Args: []string{"cache", "dir"}},
			fallback: yarnClassicDefault,
		}
	case domain.PackageManagerBun:
		return &strategy{
			query:    domain.Command{Name: "bun", Args: []string{"pm", "cache"}},
			hint:     bunfigHint,
			fallback: bunDefault,
		}
	case domain.PackageManagerDeno:
		return &strategy{
			query:    domain.Command{Name: "deno", Args: []string{"info", "--json"}},
			parse:    parseDenoInfo,
			fallback: denoDefault,
		}
	default:
		return nil
	}
}

func parseDenoInfo(out string) string {
	var info struct {
		DenoDir string `json:"denoDir"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return ""
	}
	return info.DenoDir
}

func npmDefault(d *Detector) (string, bool) {
	if d.platform.IsWindows() {
		return d.localAppData("npm-cache")
	}
	return d.home(".npm")
}

func pnpmDefault(d *Detector) (string, bool) {
	switch d.platform.OS {
	case "windows":
		return d.localAppData("pnpm", "store")
	case "darwin":
		return d.home("Library", "pnpm", "store")
	default:
		if xdg := d.getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "pnpm", "store"), true
		}
		return d.home(".local", "share", "pnpm", "store")
	}
}

func yarnClassicDefault(d *Detector) (string, bool) {
	switch d.platform.OS {
	case "windows":
		return d.localAppData("Yarn", "Cache")
	case "darwin":
		return d.home("Library", "Caches", "Yarn")
	default:
		return d.home(".cache", "yarn")
	}
}

func yarnBerryDefault(d *Detector) (string, bool) {
	return d.home(".yarn", "berry", "cache")
}

func bunDefault(d *Detector) (string, bool) {
	if dir := d.getenv("BUN_INSTALL_CACHE_DIR"); dir != "" {
		return dir, true
	}
	return d.home(".bun", "install", "cache")
}

func denoDefault(d *Detector) (string, bool) {
	if dir := d.getenv("DENO_DIR"); dir != "" {
		return dir, true
	}
	switch d.platform.OS {
	case "windows":
		return d.localAppData("deno")
	case "darwin":
		return d.home("Library", "Caches", "deno")
	default:
		return d.home(".cache", "deno")
	}
}
