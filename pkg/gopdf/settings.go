package gopdf

import (
	"os"

	"gopkg.in/yaml.v2"
)

// RenderSettings is a hint passed to the concrete Scene backend
// alongside its construction; the abstract Scene interface itself
// carries no notion of it. Currently the only setting is whether the
// backend should anti-alias its output.
type RenderSettings struct {
	AntiAlias bool `yaml:"anti_alias"`
}

// DefaultRenderSettings turns anti-aliasing on, the setting every
// rendered sample in the retrieval pack uses.
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{AntiAlias: true}
}

// CLIConfig is the optional YAML file the save and compare binaries
// read for their defaults (compare uses only its RenderSettings). A missing file is not an error —
// LoadCLIConfig returns DefaultCLIConfig() untouched.
type CLIConfig struct {
	Scale      float64 `yaml:"scale"`
	OutputPath string  `yaml:"output_path"`
	RenderSettings `yaml:",inline"`
}

// DefaultCLIConfig is what save uses with no config file present:
// scale 2x, output out.png, anti-aliasing on.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Scale:          2.0,
		OutputPath:     "out.png",
		RenderSettings: DefaultRenderSettings(),
	}
}

// LoadCLIConfig reads a YAML config file at path, overlaying its
// fields onto DefaultCLIConfig(). A missing file returns the defaults
// with no error; a present-but-malformed file returns the parse error.
func LoadCLIConfig(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
