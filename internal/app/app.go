// Package app implements the application layer for setupjs.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/setupjs/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	inputs    ports.InputLoader
	manifests ports.ManifestLoader
	installer ports.Installer
	runner    ports.CommandRunner
	cache     ports.DependencyCache
	outputs   ports.Outputs
	tracer    ports.Tracer
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	inputs ports.InputLoader,
	manifests ports.ManifestLoader,
	installer ports.Installer,
	runner ports.CommandRunner,
	cache ports.DependencyCache,
	outputs ports.Outputs,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		inputs:    inputs,
		manifests: manifests,
		installer: installer,
		runner:    runner,
		cache:     cache,
		outputs:   outputs,
		tracer:    tracer,
		logger:    log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// InputsFile is an optional YAML file of input defaults.
	InputsFile string
	// WorkingDirectory overrides the working-directory input.
	WorkingDirectory string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions = RunOptions

// PostOptions configuration for the Post method.
type PostOptions struct {
	InputsFile string
}

// setup is everything the main phase learns before installing.
type setup struct {
	inputs  domain.Inputs
	workdir string
	plan    domain.Plan
}

// Run executes the main phase: resolve, install, restore the cache, install
// dependencies and publish outputs.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	s, err := a.prepare(ctx, opts)
	if err != nil {
		return err
	}
	tc := s.plan.Toolchain

	runtimes, err := a.installRuntimes(ctx, tc.Runtimes)
	if err != nil {
		return err
	}

	biome := a.installBiome(ctx, s.plan.BiomeVersion)

	pmVersion, err := a.activatePackageManager(ctx, tc.PackageManager, s.workdir)
	if err != nil {
		return err
	}

	var restored *domain.RestoreResult
	if s.inputs.Cache {
		restored = a.restoreCache(ctx, s)
	}

	if s.inputs.SkipInstall {
		a.logger.Info("Skipping dependency install")
	} else if err := a.installDependencies(ctx, tc.PackageManager, s.workdir); err != nil {
		return err
	}

	return a.emitOutputs(tc, runtimes, pmVersion, biome, restored)
}

// Resolve loads inputs and returns the plan a run would execute, without installing anything.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (domain.Plan, error) {
	s, err := a.prepare(ctx, opts)
	if err != nil {
		return domain.Plan{}, err
	}
	return s.plan, nil
}

// Post executes the post phase. Cache failures are warnings, so it never fails the job.
func (a *App) Post(ctx context.Context, opts PostOptions) error {
	in, err := a.inputs.Load(opts.InputsFile)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("Skipping cache save: %v", err))
		return nil
	}
	if !in.Cache {
		a.logger.Debug("Cache disabled, nothing to save")
		return nil
	}

	a.logger.Group("Save cache")
	defer a.logger.EndGroup()

	outcome := a.cache.Save(ctx)
	a.logger.Debug("Cache save: " + string(outcome))
	return nil
}

func (a *App) prepare(ctx context.Context, opts RunOptions) (*setup, error) {
	in, err := a.inputs.Load(opts.InputsFile)
	if err != nil {
		return nil, err
	}
	if opts.WorkingDirectory != "" {
		in.WorkingDirectory = opts.WorkingDirectory
	}

	workdir, err := filepath.Abs(in.WorkingDirectory)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidInput.Error()), "working_directory", in.WorkingDirectory)
	}

	s := &setup{inputs: *in, workdir: workdir}
	err = a.step(ctx, "Resolve toolchain", func(context.Context) error {
		m, err := a.loadManifest(*in, workdir)
		if err != nil {
			return err
		}
		s.plan, err = resolver.BuildPlan(*in, m)
		if err != nil {
			return err
		}
		a.logger.Info("Resolved " + describe(s.plan))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// loadManifest reads the manifest. In explicit mode a missing manifest is allowed.
func (a *App) loadManifest(in domain.Inputs, workdir string) (*domain.Manifest, error) {
	path := in.Manifest
	if path == "" {
		path = domain.ManifestFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workdir, path)
	}

	m, err := a.manifests.Load(path)
	if err != nil {
		if in.Explicit() && errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug(fmt.Sprintf("No manifest at %s, using inputs only", path))
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// installRuntimes installs every runtime in declared order and returns the reported versions.
func (a *App) installRuntimes(ctx context.Context, runtimes []domain.RuntimeSpec) (map[domain.RuntimeName]string, error) {
	installed := make(map[domain.RuntimeName]string, len(runtimes))
	for _, r := range runtimes {
		err := a.step(ctx, fmt.Sprintf("Install %s %s", r.Name, r.Version), func(ctx context.Context) error {
			v, err := a.installer.Install(ctx, domain.ToolFor(r.Name), r.Version)
			if err != nil {
				return err
			}
			installed[r.Name] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return installed, nil
}

// installBiome installs the lint tool. Failures are warnings and yield "".
func (a *App) installBiome(ctx context.Context, version string) string {
	if version == "" {
		return ""
	}

	var installed string
	err := a.step(ctx, "Install biome "+version, func(ctx context.Context) error {
		v, err := a.installer.Install(ctx, domain.ToolBiome, version)
		if err != nil {
			return err
		}
		installed = v
		return nil
	})
	if err != nil {
		a.logger.Warn(fmt.Sprintf("Continuing without biome: %v", err))
		return ""
	}
	return installed
}

// activatePackageManager makes pm available at its pinned version and returns the version it reports.
func (a *App) activatePackageManager(ctx context.Context, pm domain.PackageManagerSpec, workdir string) (string, error) {
	var version string
	err := a.step(ctx, "Activate "+pm.String(), func(ctx context.Context) error {
		cmd, ok := domain.ActivationCommand(pm)
		if !ok {
			// bun and deno ship with their runtime.
			version = pm.Version
			return nil
		}

		probe := domain.Command{Name: string(pm.Name), Args: []string{"--version"}, Dir: workdir}
		if pm.Name == domain.PackageManagerNpm {
			if current, err := a.runner.Output(ctx, probe); err == nil && current == pm.Version {
				a.logger.Info(fmt.Sprintf("npm %s is already active", current))
				version = current
				return nil
			}
		}

		cmd.Dir = workdir
		if err := a.runner.Run(ctx, cmd); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrActivationFailed.Error()), "package_manager", pm.String())
		}

		got, err := a.runner.Output(ctx, probe)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrActivationFailed.Error()), "package_manager", pm.String())
		}
		if got != pm.Version {
			a.logger.Warn(fmt.Sprintf("%s reports version %s, expected %s", pm.Name, got, pm.Version))
		}
		version = got
		return nil
	})
	return version, err
}

func (a *App) restoreCache(ctx context.Context, s *setup) *domain.RestoreResult {
	ctx, span := a.tracer.Start(ctx, "Restore cache")
	defer span.End()

	result := a.cache.Restore(ctx, domain.RestoreRequest{
		Toolchain: s.plan.Toolchain,
		WorkDir:   s.workdir,
		Extra: domain.CacheConfig{
			CachePaths:       s.inputs.CachePaths,
			LockFilePatterns: s.inputs.LockFilePatterns,
		},
		Salt:       s.inputs.CacheKeySalt,
		ExactMatch: s.inputs.CacheExactMatch,
	})
	span.SetAttribute("cache.hit", string(result.Hit))
	span.SetAttribute("cache.primary_key", result.PrimaryKey)
	span.SetAttribute("cache.lock_files", result.LockFiles)
	return &result
}

// installDependencies runs the install command for pm, frozen when its lock file is present.
func (a *App) installDependencies(ctx context.Context, pm domain.PackageManagerSpec, workdir string) error {
	cmd, ok := domain.InstallCommand(pm, hasLockFile(pm.Name, workdir))
	if !ok {
		a.logger.Info(fmt.Sprintf("%s has no install step, skipping dependency install", pm.Name))
		return nil
	}
	cmd.Dir = workdir

	return a.step(ctx, "Install dependencies", func(ctx context.Context) error {
		if err := a.runner.Run(ctx, cmd); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDependencyInstallFailed.Error()), "command", cmd.String())
		}
		return nil
	})
}

func hasLockFile(pm domain.PackageManagerName, workdir string) bool {
	for _, name := range domain.LockFileNames(pm) {
		if _, err := os.Stat(filepath.Join(workdir, name)); err == nil {
			return true
		}
	}
	return false
}

func (a *App) emitOutputs(
	tc domain.Toolchain,
	runtimes map[domain.RuntimeName]string,
	pmVersion, biome string,
	restored *domain.RestoreResult,
) error {
	type output struct {
		key   domain.OutputKey
		value string
	}
	var out []output

	for _, name := range []domain.RuntimeName{domain.RuntimeNode, domain.RuntimeBun, domain.RuntimeDeno} {
		versionKey, enabledKey := domain.RuntimeOutputs(name)
		v, ok := runtimes[name]
		out = append(out, output{versionKey, v}, output{enabledKey, strconv.FormatBool(ok)})
	}

	out = append(out,
		output{domain.OutputPackageManager, string(tc.PackageManager.Name)},
		output{domain.OutputPackageManagerVersion, pmVersion},
		output{domain.OutputBiomeVersion, biome},
		output{domain.OutputBiomeEnabled, strconv.FormatBool(biome != "")},
		output{domain.OutputCacheEnabled, strconv.FormatBool(restored != nil)},
	)

	hit := domain.CacheHitMiss
	var primary, lockFiles, cachePaths string
	if restored != nil {
		hit = restored.Hit
		primary = restored.PrimaryKey
		lockFiles = strings.Join(restored.LockFiles, ",")
		cachePaths = strings.Join(restored.CachePaths, ",")
	}
	out = append(out,
		output{domain.OutputCacheHit, string(hit)},
		output{domain.OutputCachePrimaryKey, primary},
		output{domain.OutputLockFiles, lockFiles},
		output{domain.OutputCachePaths, cachePaths},
	)

	for _, o := range out {
		if err := a.outputs.Set(o.key, o.value); err != nil {
			return err
		}
	}
	return nil
}

// step runs fn inside a span. Root spans render as log groups.
func (a *App) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// describe renders a plan for logs, for example "node 24.11.0, pnpm 10.20.0".
func describe(p domain.Plan) string {
	parts := make([]string, 0, len(p.Toolchain.Runtimes)+2)
	for _, r := range p.Toolchain.Runtimes {
		parts = append(parts, fmt.Sprintf("%s %s", r.Name, r.Version))
	}
	parts = append(parts, fmt.Sprintf("%s %s", p.Toolchain.PackageManager.Name, p.Toolchain.PackageManager.Version))
	if p.BiomeVersion != "" {
		parts = append(parts, "biome "+p.BiomeVersion)
	}
	return strings.Join(parts, ", ")
}
