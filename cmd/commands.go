package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
	"github.com/zkbridge/walletkit/config"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/opstore"
	"github.com/zkbridge/walletkit/types"
	"github.com/zkbridge/walletkit/wallet"
)

type balanceOutput struct {
	Account string `json:"account"`
	Layer   string `json:"layer"`
	Token   string `json:"token"`
	Balance string `json:"balance"`
	Amount  string `json:"amount"`
}

type submitOutput struct {
	Kind   opstore.Kind `json:"kind"`
	Hash   common.Hash  `json:"hash"`
	Status string       `json:"status,omitempty"`
	L2Hash *common.Hash `json:"l2Hash,omitempty"`
}

func balanceCmd(cliCtx *cli.Context) error {
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()
	ctx := cliCtx.Context

	token, err := env.lookupToken(cliCtx.String(flagToken))
	if err != nil {
		return err
	}
	block, err := types.NewBlockParam(cliCtx.String(flagBlock))
	if err != nil {
		return err
	}
	out := balanceOutput{Account: env.wallet.Address().Hex(), Layer: "l2", Token: token.Symbol}
	var balance *big.Int
	if cliCtx.Bool(flagL1) {
		out.Layer = "l1"
		balance, err = env.wallet.GetL1Balance(ctx, token.L1Address, block)
	} else {
		var l2 common.Address
		if l2, err = env.l2Token(ctx, token); err != nil {
			return err
		}
		balance, err = env.wallet.GetBalance(ctx, l2, block)
	}
	if err != nil {
		return err
	}
	if out.Token == "" {
		out.Token = token.L1Address.Hex()
	}
	out.Balance = balance.String()
	out.Amount = formatAmount(balance, token.Decimals)
	return printJSON(cliCtx, out)
}

func depositCmd(cliCtx *cli.Context) error {
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()
	ctx := cliCtx.Context

	token, err := env.lookupToken(cliCtx.String(flagToken))
	if err != nil {
		return err
	}
	amount, err := parseAmount(cliCtx.String(flagAmount), token.Decimals)
	if err != nil {
		return err
	}
	to, err := optionalAddress(cliCtx.String(flagTo))
	if err != nil {
		return err
	}
	tx := &types.DepositTransaction{
		Token:        token.L1Address,
		Amount:       amount,
		To:           to,
		ApproveERC20: cliCtx.Bool(flagApprove),
	}
	if gasLimit := cliCtx.Uint64(flagL2GasLimit); gasLimit > 0 {
		tx.L2GasLimit = new(big.Int).SetUint64(gasLimit)
	}
	res, err := env.wallet.DepositWithApproval(ctx, tx)
	if res != nil && res.Approval != nil {
		env.journalApproval(ctx, token.L1Address, amount, res.Approval)
	}
	if err != nil {
		return err
	}
	hash := res.Hash
	recipient := env.wallet.Address()
	if to != nil {
		recipient = *to
	}
	op := &opstore.Operation{Kind: opstore.KindDeposit, Token: token.L1Address, Amount: amount,
		Recipient: recipient, L1Hash: &hash}
	env.journal(op)
	return followPriorityOp(cliCtx, env, op, cliCtx.Bool(flagWait))
}

type approvalOutput struct {
	Kind    opstore.Kind   `json:"kind"`
	Status  string         `json:"status"`
	Spender common.Address `json:"spender"`
	Hash    *common.Hash   `json:"hash,omitempty"`
}

func approveCmd(cliCtx *cli.Context) error {
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()

	token, err := env.lookupToken(cliCtx.String(flagToken))
	if err != nil {
		return err
	}
	amount, err := parseAmount(cliCtx.String(flagAmount), token.Decimals)
	if err != nil {
		return err
	}
	bridge, err := optionalAddress(cliCtx.String(flagBridge))
	if err != nil {
		return err
	}
	res, err := env.wallet.ApproveERC20(cliCtx.Context, token.L1Address, amount, bridge)
	if err != nil {
		return err
	}
	env.journalApproval(cliCtx.Context, token.L1Address, amount, res)
	out := approvalOutput{Kind: opstore.KindApproval, Status: res.Status.String(), Spender: res.Spender}
	if res.Status == wallet.ApprovalSubmitted {
		out.Hash = &res.TxHash
	}
	return printJSON(cliCtx, out)
}

func withdrawCmd(cliCtx *cli.Context) error {
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()
	ctx := cliCtx.Context

	token, err := env.lookupToken(cliCtx.String(flagToken))
	if err != nil {
		return err
	}
	amount, err := parseAmount(cliCtx.String(flagAmount), token.Decimals)
	if err != nil {
		return err
	}
	to, err := optionalAddress(cliCtx.String(flagTo))
	if err != nil {
		return err
	}
	l2, err := env.l2Token(ctx, token)
	if err != nil {
		return err
	}
	hash, err := env.wallet.Withdraw(ctx, &types.WithdrawTransaction{Token: l2, Amount: amount, To: to})
	if err != nil {
		return err
	}
	recipient := env.wallet.Address()
	if to != nil {
		recipient = *to
	}
	env.journal(&opstore.Operation{Kind: opstore.KindWithdraw, Token: l2, Amount: amount,
		Recipient: recipient, L2Hash: &hash})
	return printJSON(cliCtx, submitOutput{Kind: opstore.KindWithdraw, Hash: hash})
}

func transferCmd(cliCtx *cli.Context) error {
	to, err := requiredAddress(flagTo, cliCtx.String(flagTo))
	if err != nil {
		return err
	}
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()
	ctx := cliCtx.Context

	token, err := env.lookupToken(cliCtx.String(flagToken))
	if err != nil {
		return err
	}
	amount, err := parseAmount(cliCtx.String(flagAmount), token.Decimals)
	if err != nil {
		return err
	}
	l2, err := env.l2Token(ctx, token)
	if err != nil {
		return err
	}
	hash, err := env.wallet.Transfer(ctx, &types.TransferTransaction{To: to, TokenAddress: l2, Amount: amount})
	if err != nil {
		return err
	}
	env.journal(&opstore.Operation{Kind: opstore.KindTransfer, Token: l2, Amount: amount,
		Recipient: to, L2Hash: &hash})
	return printJSON(cliCtx, submitOutput{Kind: opstore.KindTransfer, Hash: hash})
}

func requestExecuteCmd(cliCtx *cli.Context) error {
	contract, err := requiredAddress(flagContract, cliCtx.String(flagContract))
	if err != nil {
		return err
	}
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()

	calldata, err := hexutil.Decode(cliCtx.String(flagCalldata))
	if err != nil {
		return fmt.Errorf("calldata: %w", err)
	}
	l2Value, err := parseWei(cliCtx.String(flagL2Value))
	if err != nil {
		return err
	}
	msg := &types.RequestExecuteCallMsg{ContractAddress: contract, CallData: calldata, L2Value: l2Value}
	if gasLimit := cliCtx.Uint64(flagL2GasLimit); gasLimit > 0 {
		msg.L2GasLimit = new(big.Int).SetUint64(gasLimit)
	}
	hash, err := env.wallet.RequestExecute(cliCtx.Context, msg)
	if err != nil {
		return err
	}
	op := &opstore.Operation{Kind: opstore.KindRequestExecute, Token: types.EthAddress, Amount: l2Value,
		Recipient: contract, L1Hash: &hash}
	env.journal(op)
	return followPriorityOp(cliCtx, env, op, cliCtx.Bool(flagWait))
}

func feeCmd(cliCtx *cli.Context) error {
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()

	token, err := env.lookupToken(cliCtx.String(flagToken))
	if err != nil {
		return err
	}
	to, err := optionalAddress(cliCtx.String(flagTo))
	if err != nil {
		return err
	}
	fee, err := env.wallet.GetFullRequiredDepositFee(cliCtx.Context, &types.DepositTransaction{Token: token.L1Address, To: to})
	if err != nil {
		return err
	}
	return printJSON(cliCtx, fee)
}

// statusCmd follows an already submitted priority operation, it is how an interrupted
// --wait resumes
func statusCmd(cliCtx *cli.Context) error {
	env, err := setup(cliCtx)
	if err != nil {
		return err
	}
	defer env.Close()

	raw, err := hexutil.Decode(cliCtx.String(flagL1Hash))
	if err != nil || len(raw) != common.HashLength {
		return fmt.Errorf("invalid l1 hash %q", cliCtx.String(flagL1Hash))
	}
	hash := common.BytesToHash(raw)
	op, err := env.store.GetByHash(hash)
	if errors.Is(err, opstore.ErrOperationNotFound) {
		log.Warnf("operation %s is not journaled, following it anyway", hash.Hex())
		op = &opstore.Operation{L1Hash: &hash}
	} else if err != nil {
		return err
	} else if !op.Kind.IsPriorityOp() || op.L1Hash == nil || *op.L1Hash != hash {
		return fmt.Errorf("operation %d with hash %s is a %s, not a priority operation", op.ID, hash.Hex(), op.Kind)
	}
	return followPriorityOp(cliCtx, env, op, true)
}

// followPriorityOp waits for the operation when wait is set and stores the reached stage
func followPriorityOp(cliCtx *cli.Context, env *runtimeEnv, op *opstore.Operation, wait bool) error {
	out := submitOutput{Kind: op.Kind, Hash: *op.L1Hash, Status: opstore.StatusSubmitted}
	if !wait {
		return printJSON(cliCtx, out)
	}
	status, waitErr := env.wallet.WaitPriorityOp(cliCtx.Context, *op.L1Hash)
	if status != nil {
		out.Status = status.Stage.String()
		if status.Stage >= wallet.StagePriorityHashDerived {
			out.L2Hash = &status.L2Hash
		}
	}
	if op.ID != 0 {
		if err := env.store.UpdateStatus(cliCtx.Context, op.ID, out.Status, out.L2Hash, waitErr); err != nil {
			log.Errorf("updating operation %d: %v", op.ID, err)
		}
	}
	if waitErr != nil {
		return waitErr
	}
	return printJSON(cliCtx, out)
}

func operationsCmd(cliCtx *cli.Context) error {
	cfg, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	// the journal is read without dialing the chains, so the compatibility check is skipped
	store, err := opstore.Open(log.WithFields("module", "opstore"), cfg.OpStore)
	if err != nil {
		return err
	}
	defer store.Close()
	ops, err := store.List(opstore.Kind(cliCtx.String(flagKind)), cliCtx.Int(flagLimit))
	if err != nil {
		return err
	}
	return printJSON(cliCtx, ops)
}

func configSchemaCmd(cliCtx *cli.Context) error {
	schema, err := config.GenerateJSONSchema()
	if err != nil {
		return err
	}
	if path := cliCtx.String(flagSchemaPath); path != "" {
		return os.WriteFile(path, schema, 0o600)
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, string(schema))
	return err
}
