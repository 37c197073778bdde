package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/signer"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ut_config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newCliContextConfigFlag(t *testing.T, values ...string) *cli.Context {
	t.Helper()
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	var configFilePaths cli.StringSlice
	flagSet.Var(&configFilePaths, FlagCfg, "")
	flagSet.Bool(FlagAllowDeprecatedFields, false, "")
	flagSet.Bool(FlagDisableDefaultConfigVars, false, "")
	flagSet.String(FlagSaveConfigPath, "", "")
	for _, value := range values {
		require.NoError(t, flagSet.Parse([]string{"--" + FlagCfg, value}))
	}
	return cli.NewContext(nil, flagSet, nil)
}

func TestLExploratorySetConfigFlag(t *testing.T) {
	value := []string{"config.toml", "another_config.toml"}
	ctx := newCliContextConfigFlag(t, value...)
	require.Equal(t, value, ctx.StringSlice(FlagCfg))
}

func TestLoadDefaultConfig(t *testing.T) {
	ctx := newCliContextConfigFlag(t, writeConfigFile(t, DefaultMandatoryVars))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.Equal(t, log.EnvironmentDevelopment, cfg.Log.Environment)
	require.Equal(t, "http://localhost:8545", cfg.L1.URL)
	require.Equal(t, "http://localhost:3050", cfg.L2.URL)
	require.Equal(t, 30*time.Second, cfg.L1.DialTimeout.Duration)
	require.Equal(t, signer.MethodLocal, cfg.Wallet.Signer.Method)
	require.Equal(t, "/app/wallet.keystore", cfg.Wallet.Signer.Config["path"])
	require.Equal(t, fees.ModelLocal, cfg.Wallet.Fees.Model)
	require.Equal(t, uint64(fees.FairL2GasPrice), cfg.Wallet.Fees.FairL2GasPrice)
	require.True(t, cfg.Wallet.Builder.EstimateL2GasLimit)
	require.Equal(t, 10*time.Minute, cfg.Wallet.L2ConfirmationTimeout.Duration)
	require.Equal(t, 2*time.Second, cfg.Wallet.PollInterval.Duration)
	require.Equal(t, "/tmp/walletkit/opstore.sqlite", cfg.OpStore.DBPath)
	require.True(t, cfg.OpStore.RequireStorageContentCompatibility)
	require.Equal(t, 5577, cfg.REST.Port)
	require.Equal(t, 9091, cfg.Prometheus.Port)
	require.False(t, cfg.Profiling.Enabled)
	require.Equal(t, 6060, cfg.Profiling.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
PathRWData = "/data"
L2URL = "https://sepolia.era.zksync.dev"

[Wallet.Fees]
Model = "contract"

[Wallet.Signer]
Method = "privatekey"
PrivateKey = "0x7726827caac94a7f9e1b160f7ea819f172f7b6f9d2a97f992c38edeab82d4110"
`)
	t.Setenv("WALLETKIT_REST_PORT", "8080")
	t.Setenv("WALLETKIT_L1URL", "http://l1:8545")
	cfg, err := Load(newCliContextConfigFlag(t, path))
	require.NoError(t, err)
	require.Equal(t, "/data/opstore.sqlite", cfg.OpStore.DBPath)
	require.Equal(t, "https://sepolia.era.zksync.dev", cfg.L2.URL)
	require.Equal(t, "http://l1:8545", cfg.L1.URL)
	require.Equal(t, 8080, cfg.REST.Port)
	require.Equal(t, fees.ModelContract, cfg.Wallet.Fees.Model)
	require.Equal(t, signer.MethodPrivateKey, cfg.Wallet.Signer.Method)
	// untouched values of an overridden section survive the merge
	require.Equal(t, uint64(fees.L1GasPerPubdataByte), cfg.Wallet.Fees.L1GasPerPubdataByte)
}

func TestLoadConfigWithoutDefaultVars(t *testing.T) {
	ctx := newCliContextConfigFlag(t, writeConfigFile(t, "[Log]\nLevel = \"debug\"\n"))
	require.NoError(t, ctx.Set(FlagDisableDefaultConfigVars, "true"))
	_, err := Load(ctx)
	require.ErrorIs(t, err, ErrUnresolvedVar)
}

func TestLoadConfigWithSaveConfigFile(t *testing.T) {
	ctx := newCliContextConfigFlag(t, writeConfigFile(t, DefaultVars+"\n"))
	dir := t.TempDir()
	require.NoError(t, ctx.Set(FlagSaveConfigPath, dir))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	_, err = os.Stat(filepath.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, SaveConfigFileName+".merged"))
	require.NoError(t, err)
}

func TestLoadConfigWithInvalidFilename(t *testing.T) {
	cfg, err := Load(newCliContextConfigFlag(t, "invalid_file.toml"))
	require.Error(t, err)
	require.Nil(t, cfg)

	_, err = Load(newCliContextConfigFlag(t, "config.json"))
	require.ErrorContains(t, err, "unsupported extension")
}

func TestLoadConfigWithDeprecatedFields(t *testing.T) {
	const (
		removedKey     = "Removed key, no longer read"
		removedSection = "Removed section, no longer read"
	)
	saved := deprecatedFieldsOnConfig
	t.Cleanup(func() { deprecatedFieldsOnConfig = saved })
	deprecatedFieldsOnConfig = []DeprecatedField{
		{FieldNamePattern: "Wallet.Legacy", Reason: removedKey},
		{FieldNamePattern: "Old.", Reason: removedSection},
	}

	path := writeConfigFile(t, `
[Wallet]
Legacy = "0x01"
[Old]
	[Old.Inner]
	Path = "/tmp/key"
`)
	_, err := Load(newCliContextConfigFlag(t, path))
	require.Error(t, err)
	require.Contains(t, err.Error(), removedKey)
	require.Contains(t, err.Error(), removedSection)
	require.Contains(t, err.Error(), "old.inner.path")

	ctx := newCliContextConfigFlag(t, path)
	require.NoError(t, ctx.Set(FlagAllowDeprecatedFields, "true"))
	cfg, err := Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestCurrentConfigHasNoDeprecatedFields(t *testing.T) {
	cfg, err := Load(newCliContextConfigFlag(t, writeConfigFile(t, DefaultMandatoryVars)))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Empty(t, deprecatedFieldsOnConfig)
}

func TestConfigRender(t *testing.T) {
	render := NewConfigRender([]FileData{
		{Name: "vars", Content: `Base = "/data"` + "\n" + `Nested = "{{Base}}/db"`},
		{Name: "values", Content: "[Store]\nPath = \"{{Nested}}/ops.sqlite\"\nSize = 3\n"},
		{Name: "override", Content: "[Store]\nSize = 4\n"},
	}, "")
	out, err := render.Render()
	require.NoError(t, err)
	cfg, err := NewConfigRender([]FileData{{Name: "out", Content: out}}, "").Render()
	require.NoError(t, err)
	require.Contains(t, cfg, "/data/db/ops.sqlite")
	require.Contains(t, cfg, "Size = 4")

	_, err = NewConfigRender([]FileData{{Name: "bad", Content: "A = \"{{Missing}}\""}}, "").Render()
	require.ErrorIs(t, err, ErrUnresolvedVar)

	_, err = NewConfigRender([]FileData{{Name: "loop", Content: "A = \"{{B}}\"\nB = \"{{A}}\""}}, "").Render()
	require.ErrorIs(t, err, ErrUnresolvedVar)

	_, err = NewConfigRender([]FileData{{Name: "invalid", Content: "A = "}}, "").Render()
	require.ErrorContains(t, err, "invalid")
}

func TestGenerateJSONSchema(t *testing.T) {
	data, err := GenerateJSONSchema()
	require.NoError(t, err)
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, section := range []string{"Log", "L1", "L2", "Wallet", "TokenList", "OpStore", "REST", "Prometheus", "Profiling"} {
		require.Contains(t, properties, section)
	}
	// sections are not flattened into the root
	require.NotContains(t, properties, "Enabled")
	wallet, ok := properties["Wallet"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, wallet["properties"], "Signer")
}
