package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	walletkit "github.com/zkbridge/walletkit"
)

func versionCmd(cliCtx *cli.Context) error {
	if cliCtx.Bool(flagJSON) {
		return printJSON(cliCtx, walletkit.GetVersion())
	}
	walletkit.PrintVersion(cliCtx.App.Writer)
	return nil
}

// printJSON writes v indented to the app output
func printJSON(cliCtx *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, string(data))
	return err
}
