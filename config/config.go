package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"github.com/zkbridge/walletkit/chainclient"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/opstore"
	"github.com/zkbridge/walletkit/pprof"
	"github.com/zkbridge/walletkit/prometheus"
	"github.com/zkbridge/walletkit/tokenlist"
	"github.com/zkbridge/walletkit/wallet"
	"github.com/zkbridge/walletkit/walletservice"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagDisableDefaultConfigVars is the flag to force all variables to be set on config-files
	FlagDisableDefaultConfigVars = "disable-default-config-vars"
	// FlagAllowDeprecatedFields is the flag to allow deprecated fields
	FlagAllowDeprecatedFields = "allow-deprecated-fields"

	EnvVarPrefix       = "WALLETKIT"
	ConfigType         = "toml"
	SaveConfigFileName = "walletkit_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

type DeprecatedFieldsError struct {
	// key is the rule and the value is the field's name that matches the rule
	Fields map[DeprecatedField][]string
}

func NewErrDeprecatedFields() *DeprecatedFieldsError {
	return &DeprecatedFieldsError{
		Fields: make(map[DeprecatedField][]string),
	}
}

func (e *DeprecatedFieldsError) AddDeprecatedField(fieldName string, rule DeprecatedField) {
	e.Fields[rule] = append(e.Fields[rule], fieldName)
}

func (e *DeprecatedFieldsError) Error() string {
	res := "found deprecated fields:"
	for rule, fieldsMatches := range e.Fields {
		res += fmt.Sprintf("\n\t- %s: %s", rule.Reason, strings.Join(fieldsMatches, ", "))
	}
	return res
}

type DeprecatedField struct {
	// If the field name ends with a dot means that match a section
	FieldNamePattern string
	Reason           string
}

// deprecatedFieldsOnConfig holds the keys removed from the config file format.
// A file still setting one of them is rejected unless FlagAllowDeprecatedFields is set.
var deprecatedFieldsOnConfig []DeprecatedField

/*
Config represents the configuration of walletkit
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config `mapstructure:"Log"`

	// L1 is the connection to the settlement layer
	L1 chainclient.Config `mapstructure:"L1"`

	// L2 is the connection to the rollup, it must serve the zks_ namespace
	L2 chainclient.Config `mapstructure:"L2"`

	// Wallet configures the signer, the fee model and the confirmation waits
	Wallet wallet.Config `mapstructure:"Wallet"`

	// TokenList is the optional list of known tokens, used to resolve symbols
	TokenList tokenlist.Config `mapstructure:"TokenList"`

	// OpStore is the journal of the operations sent by the CLI
	OpStore opstore.Config `mapstructure:"OpStore"`

	// REST contains the configuration settings for the REST service
	REST walletservice.Config `mapstructure:"REST"`

	// Prometheus is the configuration of the prometheus service
	Prometheus prometheus.Config `mapstructure:"Prometheus"`

	// Profiling is the configuration of the pprof server
	Profiling pprof.Config `mapstructure:"Profiling"`
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	filesData, err := readFiles(ctx.StringSlice(FlagCfg))
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	defaultConfigVars := !ctx.Bool(FlagDisableDefaultConfigVars)
	allowDeprecatedFields := ctx.Bool(FlagAllowDeprecatedFields)
	return LoadFile(filesData, saveConfigPath, defaultConfigVars, allowDeprecatedFields)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		if ext := filepath.Ext(file); ext != "."+ConfigType {
			return nil, fmt.Errorf("config file %s: unsupported extension %q, only %s is accepted", file, ext, ConfigType)
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		result = append(result, FileData{Name: file, Content: string(content)})
	}
	return result, nil
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func SaveConfigToFile(cfg *Config, saveConfigPath string) error {
	marshaled, err := toml.Marshal(cfg)
	if err != nil {
		log.Errorf("Can't marshal config to toml. Err: %v", err)
		return err
	}
	return SaveDataToFile(saveConfigPath, "final config file", marshaled)
}

func SaveDataToFile(fullPath, reason string, data []byte) error {
	log.Infof("Writing %s to: %s", reason, fullPath)
	if err := os.WriteFile(fullPath, data, DefaultCreationFilePermissions); err != nil {
		err = fmt.Errorf("error writing %s to file %s. Err: %w", reason, fullPath, err)
		log.Error(err)
		return err
	}
	return nil
}

// LoadFile renders the defaults and files, in that order of precedence, and decodes the result
func LoadFile(files []FileData, saveConfigPath string,
	setDefaultVars bool, allowDeprecatedFields bool) (*Config, error) {
	log.Debugf("Loading configuration: saveConfigPath: %s, setDefaultVars: %t, allowDeprecatedFields: %t",
		saveConfigPath, setDefaultVars, allowDeprecatedFields)
	fileData := make([]FileData, 0, len(files)+3) //nolint:mnd
	if setDefaultVars {
		fileData = append(fileData, FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars})
	}
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderedCfg, err := NewConfigRender(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, fmt.Sprintf("%s.merged", SaveConfigFileName))
		if err := SaveDataToFile(fullPath, "merged config file", []byte(renderedCfg)); err != nil {
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType)
	if err != nil && allowDeprecatedFields {
		var customErr *DeprecatedFieldsError
		if errors.As(err, &customErr) {
			log.Warnf("detected deprecated fields: %s", err.Error())
			err = nil
		}
	}
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		if err := SaveConfigToFile(cfg, filepath.Join(saveConfigPath, SaveConfigFileName)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if err := v.ReadConfig(bytes.NewBufferString(configData)); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	}
	if err := v.Unmarshal(cfg, decodeHooks...); err != nil {
		return err
	}
	return checkDeprecatedFields(v.AllKeys())
}

func checkDeprecatedFields(keysOnConfig []string) error {
	err := NewErrDeprecatedFields()
	for _, key := range keysOnConfig {
		if rule := getDeprecatedField(key); rule != nil {
			err.AddDeprecatedField(key, *rule)
		}
	}
	if len(err.Fields) > 0 {
		return err
	}
	return nil
}

func getDeprecatedField(fieldName string) *DeprecatedField {
	for _, deprecatedField := range deprecatedFieldsOnConfig {
		pattern := strings.ToLower(deprecatedField.FieldNamePattern)
		name := strings.ToLower(fieldName)
		if pattern == name {
			return &deprecatedField
		}
		// If the field name ends with a dot, it means FieldNamePattern*
		if strings.HasSuffix(pattern, ".") && strings.HasPrefix(name, pattern) {
			return &deprecatedField
		}
	}
	return nil
}
