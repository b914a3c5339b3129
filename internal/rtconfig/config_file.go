package rtconfig

import (
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema, mirroring
// the teacher's internal/app.FileConfig shape: a nested struct that maps
// naturally onto Config fields and lets operators check a config file into
// version control instead of passing a long flag list.
type FileConfig struct {
	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	RequestTimeoutSeconds float64 `yaml:"requestTimeoutSeconds"`
	ResponseTemperature   float32 `yaml:"responseTemperature"`
	MaxGenerationTokens   int     `yaml:"maxGenerationTokens"`

	Max struct {
		ToolCallRoundsPerRequest int `yaml:"toolCallRoundsPerRequest"`
		RepairAttempts           int `yaml:"repairAttempts"`
	} `yaml:"max"`

	StrictSystemPrompt bool `yaml:"strictSystemPrompt"`
}

// LoadFile reads a YAML configuration file and overlays its non-zero fields
// onto a base Config, returning the merged result. A missing or unreadable
// path returns the read error together with the unchanged base; callers can
// use os.IsNotExist to tell a missing file apart from other failures.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return base, err
	}

	merged := base
	if fc.LLM.BaseURL != "" {
		merged.BaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		merged.ModelName = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		merged.APIKey = fc.LLM.APIKey
	}
	if fc.RequestTimeoutSeconds > 0 {
		merged.RequestTimeout = time.Duration(fc.RequestTimeoutSeconds * float64(time.Second))
	}
	if fc.ResponseTemperature > 0 {
		merged.ResponseTemperature = fc.ResponseTemperature
	}
	if fc.MaxGenerationTokens > 0 {
		merged.MaxGenerationTokens = fc.MaxGenerationTokens
	}
	if fc.Max.ToolCallRoundsPerRequest > 0 {
		merged.MaxToolCallRoundsPerRequest = fc.Max.ToolCallRoundsPerRequest
	}
	if fc.Max.RepairAttempts > 0 {
		merged.MaxRepairAttempts = fc.Max.RepairAttempts
	}
	merged.StrictSystemPrompt = merged.StrictSystemPrompt || fc.StrictSystemPrompt

	return merged, nil
}
