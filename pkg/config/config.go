// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🔄 PatchArgs describes the anchored region replacement to apply
type PatchArgs struct {
	StartMarker    string `json:"start_marker,omitempty" yaml:"start_marker,omitempty" hcl:"start_marker,optional"`
	EndMarker      string `json:"end_marker,omitempty" yaml:"end_marker,omitempty" hcl:"end_marker,optional"`
	Replacement    string `json:"replacement,omitempty" yaml:"replacement,omitempty" hcl:"replacement,optional"`
	FileFilterGlob string `json:"file_filter_glob,omitempty" yaml:"file_filter_glob,omitempty" hcl:"file_filter_glob,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Target string     `json:"target,omitempty" yaml:"target,omitempty" hcl:"target,optional"`
	Patch  *PatchArgs `json:"patch,omitempty" yaml:"patch,omitempty" hcl:"patch,block"`

	// location is the path this config was loaded from, empty for defaults
	location string
}

// 🏭 Default returns the baked-in configuration: the literal anchors
// and replacement block of the original one-shot patch.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills every unset field with its baked-in literal
func (cfg *Config) applyDefaults() {
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	if cfg.Patch == nil {
		cfg.Patch = &PatchArgs{}
	}
	if cfg.Patch.StartMarker == "" {
		cfg.Patch.StartMarker = DefaultStartMarker
	}
	if cfg.Patch.EndMarker == "" {
		cfg.Patch.EndMarker = DefaultEndMarker
	}
	if cfg.Patch.Replacement == "" {
		cfg.Patch.Replacement = DefaultReplacement
	}
	if cfg.Patch.FileFilterGlob == "" {
		cfg.Patch.FileFilterGlob = DefaultFileFilterGlob
	}
}

// 🔍 Validate checks if the configuration is valid
func Validate(ctx context.Context, cfg *Config) error {
	cfg.applyDefaults()

	if cfg.Target == "" {
		return errors.Errorf("target is required")
	}
	if cfg.Patch.StartMarker == "" {
		return errors.Errorf("patch.start_marker is required")
	}
	if cfg.Patch.EndMarker == "" {
		return errors.Errorf("patch.end_marker is required")
	}

	return nil
}

// 📝 Location returns the path this config was loaded from, or empty
// if it is the baked-in default.
func (cfg *Config) Location() string {
	return cfg.location
}

// String returns a string representation of the config
func (cfg *Config) String() string {
	if cfg.location == "" {
		return "defaults -> " + cfg.Target
	}
	return cfg.location + " -> " + cfg.Target
}
