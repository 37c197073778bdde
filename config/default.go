package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
L1URL = "http://localhost:8545"
L2URL = "http://localhost:3050"

SignerMethod = "local"
KeystorePath = "/app/wallet.keystore"
KeystorePassword = "testonly"
`

// This doesnt below to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/walletkit"
`

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]

[L1]
URL = "{{L1URL}}"
ChainID = 0
DialTimeout = "30s"

[L2]
URL = "{{L2URL}}"
ChainID = 0
DialTimeout = "30s"

[Wallet]
L1ConfirmationTimeout = "10m"
L2ConfirmationTimeout = "10m"
PollInterval = "2s"
	[Wallet.Signer]
		Method = "{{SignerMethod}}"
		Path = "{{KeystorePath}}"
		Pass = "{{KeystorePassword}}"
	[Wallet.Fees]
		Model = "local"
		FairL2GasPrice = 500000000
		L1GasPerPubdataByte = 17
	[Wallet.Builder]
		EstimateL2GasLimit = true

[TokenList]
Path = ""

[OpStore]
DBPath = "{{PathRWData}}/opstore.sqlite"
RequireStorageContentCompatibility = true

[REST]
Enabled = true
Host = "0.0.0.0"
Port = 5577
ReadTimeout = "2s"
WriteTimeout = "2s"

[Prometheus]
Enabled = true
Host = "localhost"
Port = 9091

[Profiling]
Enabled = false
Host = "localhost"
Port = 6060
`
