package initialize

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/gradlever/gradlever/internal/config"
)

const configHeader = `# gradlever configuration file
#
# path:   build script holding the "version '<literal>'" declaration
# trim:   quoted (strip matching quotes, reject anything else) or blind
#         (strip one character from each end)
# format: text or json
# theme:  prompt theme for "gradlever init"
#
# GRADLEVER_PATH overrides path; command-line flags override everything.

`

// GenerateConfigWithComments renders cfg as YAML preceded by a comment header.
func GenerateConfigWithComments(cfg *config.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(configHeader)
	sb.Write(body)
	return []byte(sb.String()), nil
}

// commentedMarshaler adapts GenerateConfigWithComments to core.Marshaler.
type commentedMarshaler struct{}

func (commentedMarshaler) Marshal(v any) ([]byte, error) {
	cfg, ok := v.(*config.Config)
	if !ok {
		return nil, fmt.Errorf("unexpected config type %T", v)
	}
	return GenerateConfigWithComments(cfg)
}
