package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// maxRenderPasses bounds the resolution of vars referencing other vars
	maxRenderPasses = 8
)

var ErrUnresolvedVar = errors.New("config var not resolved")

// FileData is the content of one configuration source
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges configuration sources and replaces their {{Var}} placeholders
type ConfigRender struct {
	FilesData []FileData
	// EnvinronmentPrefix, when set, lets PREFIX_VAR env vars override vars
	EnvinronmentPrefix string
}

func NewConfigRender(filesData []FileData, envinronmentPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:          filesData,
		EnvinronmentPrefix: envinronmentPrefix,
	}
}

// Render merges the sources, later ones winning, and returns the rendered TOML
func (c *ConfigRender) Render() (string, error) {
	merged := map[string]interface{}{}
	for _, file := range c.FilesData {
		var data map[string]interface{}
		if err := toml.Unmarshal([]byte(file.Content), &data); err != nil {
			return "", fmt.Errorf("error parsing %s: %w", file.Name, err)
		}
		mergeMaps(merged, data)
	}
	raw, err := toml.Marshal(merged)
	if err != nil {
		return "", fmt.Errorf("error marshalling merged config: %w", err)
	}
	return c.renderVars(string(raw), merged)
}

func (c *ConfigRender) renderVars(content string, vars map[string]interface{}) (string, error) {
	for i := 0; i < maxRenderPasses; i++ {
		if !strings.Contains(content, startTag) {
			return content, nil
		}
		tpl, err := fasttemplate.NewTemplate(content, startTag, endTag)
		if err != nil {
			return "", fmt.Errorf("error parsing config template: %w", err)
		}
		content, err = tpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
			value, ok := c.lookupVar(strings.TrimSpace(tag), vars)
			if !ok {
				return 0, fmt.Errorf("%w: %s", ErrUnresolvedVar, tag)
			}
			return w.Write([]byte(value))
		})
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: too many nested vars", ErrUnresolvedVar)
}

func (c *ConfigRender) lookupVar(name string, vars map[string]interface{}) (string, bool) {
	if c.EnvinronmentPrefix != "" {
		envName := c.EnvinronmentPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
		if value, ok := os.LookupEnv(envName); ok {
			return value, true
		}
	}
	var current interface{} = vars
	for _, part := range strings.Split(name, ".") {
		section, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		if current, ok = lookupKey(section, part); !ok {
			return "", false
		}
	}
	if _, isSection := current.(map[string]interface{}); isSection {
		return "", false
	}
	return fmt.Sprint(current), true
}

// lookupKey matches keys case insensitively, like viper does
func lookupKey(section map[string]interface{}, key string) (interface{}, bool) {
	if value, ok := section[key]; ok {
		return value, true
	}
	for k, value := range section {
		if strings.EqualFold(k, key) {
			return value, true
		}
	}
	return nil, false
}

func mergeMaps(dst, src map[string]interface{}) {
	for key, value := range src {
		srcSection, srcIsSection := value.(map[string]interface{})
		dstSection, dstIsSection := dst[key].(map[string]interface{})
		if srcIsSection && dstIsSection {
			mergeMaps(dstSection, srcSection)
			continue
		}
		dst[key] = value
	}
}
