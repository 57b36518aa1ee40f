// Package config loads run inputs and project manifests.
package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// InputLoader implements ports.InputLoader on the process environment and an optional YAML file.
type InputLoader struct {
	environ func() []string
}

// NewInputLoader creates an InputLoader reading the process environment.
func NewInputLoader() *InputLoader {
	return &InputLoader{environ: os.Environ}
}

// Load reads the inputs file, when given, and applies the environment over it.
func (l *InputLoader) Load(file string) (*domain.Inputs, error) {
	var fromFile InputsDTO
	if file != "" {
		if err := readAndUnmarshalYAML(file, &fromFile); err != nil {
			return nil, err
		}
	}

	var fromEnv InputsDTO
	if err := env.ParseWithOptions(&fromEnv, env.Options{Environment: env.ToMap(l.environ())}); err != nil {
		return nil, zerr.Wrap(err, domain.ErrInputsParseFailed.Error())
	}

	return toInputs(fromFile.overlay(fromEnv))
}

func toInputs(dto InputsDTO) (*domain.Inputs, error) {
	in := &domain.Inputs{
		NodeVersion:           strings.TrimSpace(dto.NodeVersion),
		BunVersion:            strings.TrimSpace(dto.BunVersion),
		DenoVersion:           strings.TrimSpace(dto.DenoVersion),
		PackageManager:        strings.ToLower(strings.TrimSpace(dto.PackageManager)),
		PackageManagerVersion: strings.TrimSpace(dto.PackageManagerVersion),
		BiomeVersion:          strings.TrimSpace(dto.BiomeVersion),
		CacheKeySalt:          strings.TrimSpace(dto.CacheKeySalt),
		LockFilePatterns:      splitList(dto.LockFilePatterns),
		CachePaths:            splitList(dto.CachePaths),
		WorkingDirectory:      strings.TrimSpace(dto.WorkingDirectory),
		Manifest:              strings.TrimSpace(dto.Manifest),
	}

	var err error
	if in.SkipInstall, err = parseBool("skip-install", dto.SkipInstall, false); err != nil {
		return nil, err
	}
	if in.Cache, err = parseBool("cache", dto.Cache, true); err != nil {
		return nil, err
	}
	if in.CacheExactMatch, err = parseBool("cache-exact-match", dto.CacheExactMatch, false); err != nil {
		return nil, err
	}

	if in.WorkingDirectory == "" {
		in.WorkingDirectory = "."
	}
	if in.Manifest == "" {
		in.Manifest = domain.ManifestFileName
	}
	return in, nil
}

// parseBool accepts the boolean spellings CI users write in workflow files.
func parseBool(name, value string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return def, nil
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		err := zerr.With(zerr.Wrap(domain.ErrInvalidInput, "not a boolean"), "input", name)
		return false, zerr.With(err, "value", value)
	}
}

// splitList splits a multi-line or comma-separated input, dropping blanks.
func splitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInputsReadFailed.Error()), "path", path)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrInputsParseFailed.Error()), "path", path)
	}
	return nil
}
