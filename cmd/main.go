package main

import (
	"os"

	"github.com/urfave/cli/v2"
	walletkit "github.com/zkbridge/walletkit"
	"github.com/zkbridge/walletkit/config"
	"github.com/zkbridge/walletkit/log"
)

const appName = "walletkit"

const (
	flagToken       = "token"
	flagAmount      = "amount"
	flagTo          = "to"
	flagBlock       = "block"
	flagL1          = "l1"
	flagApprove     = "approve"
	flagWait        = "wait"
	flagBridge      = "bridge"
	flagContract    = "contract"
	flagCalldata    = "calldata"
	flagL2Value     = "l2-value"
	flagL2GasLimit  = "l2-gas-limit"
	flagL1Hash      = "l1-hash"
	flagKind        = "kind"
	flagLimit       = "limit"
	flagSchemaPath  = "output"
	flagJSON        = "json"
	defaultOpsLimit = 20
)

var (
	configFileFlag = &cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	saveConfigFlag = &cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: walletkit_config.toml)",
		Required: false,
	}
	disableDefaultConfigVars = &cli.BoolFlag{
		Name:     config.FlagDisableDefaultConfigVars,
		Aliases:  []string{"d"},
		Usage:    "Disable default configuration variables, all of them must be defined on config files",
		Required: false,
	}
	allowDeprecatedFields = &cli.BoolFlag{
		Name:     config.FlagAllowDeprecatedFields,
		Usage:    "Allow that config-files contains deprecated fields",
		Required: false,
	}
	tokenFlag = &cli.StringFlag{
		Name:  flagToken,
		Usage: "Token symbol from the token list or L1 address, ETH by default",
		Value: "ETH",
	}
	amountFlag = &cli.StringFlag{
		Name:     flagAmount,
		Usage:    "Amount in token units, e.g. 0.5",
		Required: true,
	}
	toFlag = &cli.StringFlag{
		Name:  flagTo,
		Usage: "Recipient address, the wallet itself by default",
	}
	waitFlag = &cli.BoolFlag{
		Name:  flagWait,
		Usage: "Wait until the priority operation is executed on L2",
	}
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Bridge funds between L1 and a zkSync era L2"
	app.Version = walletkit.Version
	configFlags := []cli.Flag{configFileFlag, saveConfigFlag, disableDefaultConfigVars, allowDeprecatedFields}
	withConfig := func(flags ...cli.Flag) []cli.Flag {
		return append(append([]cli.Flag{}, configFlags...), flags...)
	}
	app.Commands = []*cli.Command{
		{
			Name:   "version",
			Usage:  "Application version and build",
			Action: versionCmd,
			Flags:  []cli.Flag{&cli.BoolFlag{Name: flagJSON, Usage: "Print the build information as JSON"}},
		},
		{
			Name:   "serve",
			Usage:  "Run the read-only REST API, the health check and the metrics endpoint",
			Action: start,
			Flags:  withConfig(),
		},
		{
			Name:   "balance",
			Usage:  "Print the balance of the wallet",
			Action: balanceCmd,
			Flags: withConfig(tokenFlag,
				&cli.StringFlag{Name: flagBlock, Usage: "Block tag or number", Value: "latest"},
				&cli.BoolFlag{Name: flagL1, Usage: "Query the L1 balance instead of the L2 one"},
			),
		},
		{
			Name:   "deposit",
			Usage:  "Deposit ETH or an ERC20 token from L1 to L2",
			Action: depositCmd,
			Flags: withConfig(tokenFlag, amountFlag, toFlag, waitFlag,
				&cli.BoolFlag{Name: flagApprove, Usage: "Approve the ERC20 bridge when the allowance is not enough"},
				&cli.Uint64Flag{Name: flagL2GasLimit, Usage: "L2 gas limit of the priority operation"},
			),
		},
		{
			Name:   "approve",
			Usage:  "Let an L1 ERC20 bridge pull an amount of a token from the wallet",
			Action: approveCmd,
			Flags: withConfig(tokenFlag, amountFlag,
				&cli.StringFlag{Name: flagBridge, Usage: "Bridge address, the default L1 ERC20 bridge by default"},
			),
		},
		{
			Name:   "withdraw",
			Usage:  "Withdraw ETH or an ERC20 token from L2 to L1",
			Action: withdrawCmd,
			Flags:  withConfig(tokenFlag, amountFlag, toFlag),
		},
		{
			Name:   "transfer",
			Usage:  "Transfer ETH or an ERC20 token on L2",
			Action: transferCmd,
			Flags: withConfig(tokenFlag, amountFlag,
				&cli.StringFlag{Name: flagTo, Usage: "Recipient address", Required: true},
			),
		},
		{
			Name:   "request-execute",
			Usage:  "Request the execution of an L2 call from L1",
			Action: requestExecuteCmd,
			Flags: withConfig(waitFlag,
				&cli.StringFlag{Name: flagContract, Usage: "L2 contract address", Required: true},
				&cli.StringFlag{Name: flagCalldata, Usage: "Hex encoded calldata", Value: "0x"},
				&cli.StringFlag{Name: flagL2Value, Usage: "Value in wei sent to the contract on L2", Value: "0"},
				&cli.Uint64Flag{Name: flagL2GasLimit, Usage: "L2 gas limit of the priority operation"},
			),
		},
		{
			Name:   "fee",
			Usage:  "Print the full fee of a deposit",
			Action: feeCmd,
			Flags:  withConfig(tokenFlag, toFlag),
		},
		{
			Name:   "status",
			Usage:  "Follow a priority operation until it is executed on L2 and update the journal",
			Action: statusCmd,
			Flags: withConfig(
				&cli.StringFlag{Name: flagL1Hash, Usage: "Hash of the L1 transaction", Required: true},
			),
		},
		{
			Name:   "operations",
			Usage:  "List the journaled operations, newest first",
			Action: operationsCmd,
			Flags: withConfig(
				&cli.StringFlag{Name: flagKind, Usage: "deposit, withdraw, transfer, request_execute or approval"},
				&cli.IntFlag{Name: flagLimit, Value: defaultOpsLimit},
			),
		},
		{
			Name:   "config-schema",
			Usage:  "Print the JSON schema of the configuration file",
			Action: configSchemaCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: flagSchemaPath, Aliases: []string{"o"}, Usage: "Write the schema to this file"},
			},
		},
	}
	return app
}
