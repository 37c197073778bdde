package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/zkbridge/walletkit/contracts"
	"github.com/zkbridge/walletkit/fees"
	"github.com/zkbridge/walletkit/resolver"
	"github.com/zkbridge/walletkit/types"
)

var (
	mainContractAddr = common.HexToAddress("0x9A6DE0f62Aa270A8bCB1e2610078650D539B1Ef9")
	l1BridgeAddr     = common.HexToAddress("0x927DdFcc55164a59E0F33918D13a2D559bC10ce7")
	l2BridgeAddr     = common.HexToAddress("0x00ff932A6d70E2B8f1Eb4919e1e09C1923E7e57b")
	l1TokenAddr      = common.HexToAddress("0x881567B68502e6d7A7a3556FF4313B637Ba47F4E")
	l2TokenAddr      = common.HexToAddress("0x5A3e7a5d2E4F1Ccc31bA7bD3D6AF5e9c91F0a4b8")
	otherAddr        = common.HexToAddress("0xa61464658AfeAf65CccaaFD3a512b69A83B77618")
)

const (
	gasUsedTransfer = 21_000
	gasUsedCall     = 60_000
	estimateCall    = 150_000
	l2GasEstimate   = 570_193
	deploymentNonce = 3
)

// contractHandler executes a transaction sent to a fake contract, an error reverts it
type contractHandler func(from common.Address, tx *coretypes.Transaction) ([]*coretypes.Log, error)

// viewHandler answers eth_call on a fake contract
type viewHandler func(msg ethereum.CallMsg) ([]byte, error)

func decodeCall(codec *contracts.Codec, data []byte) (*abi.Method, []interface{}, error) {
	if len(data) < 4 {
		return nil, nil, errors.New("missing selector")
	}
	method, err := codec.MethodByID(data)
	if err != nil {
		return nil, nil, err
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return method, args, nil
}

type fakeToken struct {
	name       string
	symbol     string
	decimals   uint8
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

func newFakeToken(name, symbol string) *fakeToken {
	return &fakeToken{
		name:       name,
		symbol:     symbol,
		decimals:   18,
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (t *fakeToken) balanceOf(owner common.Address) *big.Int {
	if b, ok := t.balances[owner]; ok {
		return new(big.Int).Set(b)
	}
	return big.NewInt(0)
}

func (t *fakeToken) allowance(owner, spender common.Address) *big.Int {
	if a, ok := t.allowances[owner][spender]; ok {
		return new(big.Int).Set(a)
	}
	return big.NewInt(0)
}

func (t *fakeToken) setAllowance(owner, spender common.Address, amount *big.Int) {
	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[common.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (t *fakeToken) mint(to common.Address, amount *big.Int) {
	t.balances[to] = new(big.Int).Add(t.balanceOf(to), amount)
}

func (t *fakeToken) move(from, to common.Address, amount *big.Int) error {
	balance := t.balanceOf(from)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%s: transfer amount %s exceeds balance %s", t.symbol, amount, balance)
	}
	t.balances[from] = balance.Sub(balance, amount)
	t.mint(to, amount)
	return nil
}

func (t *fakeToken) execute(from common.Address, tx *coretypes.Transaction) ([]*coretypes.Log, error) {
	method, args, err := decodeCall(contracts.ERC20, tx.Data())
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "approve":
		t.setAllowance(from, args[0].(common.Address), args[1].(*big.Int))
		return nil, nil
	case "transfer":
		return nil, t.move(from, args[0].(common.Address), args[1].(*big.Int))
	}
	return nil, fmt.Errorf("%s: unsupported method %s", t.symbol, method.Name)
}

func (t *fakeToken) view(msg ethereum.CallMsg) ([]byte, error) {
	method, args, err := decodeCall(contracts.ERC20, msg.Data)
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "name":
		return method.Outputs.Pack(t.name)
	case "symbol":
		return method.Outputs.Pack(t.symbol)
	case "decimals":
		return method.Outputs.Pack(t.decimals)
	case "balanceOf":
		return method.Outputs.Pack(t.balanceOf(args[0].(common.Address)))
	case "allowance":
		return method.Outputs.Pack(t.allowance(args[0].(common.Address), args[1].(common.Address)))
	}
	return nil, fmt.Errorf("%s: unsupported view %s", t.symbol, method.Name)
}

// fakeChain is an in-memory chain executing signed transactions instantly
type fakeChain struct {
	name    string
	chainID *big.Int
	// baseFee nil makes a legacy chain rejecting dynamic fee transactions
	baseFee *big.Int
	tipCap  *big.Int

	mu          sync.Mutex
	balances    map[common.Address]*big.Int
	nonces      map[common.Address]uint64
	receipts    map[common.Hash]*coretypes.Receipt
	lookups     map[common.Hash]int
	handlers    map[common.Address]contractHandler
	views       map[common.Address]viewHandler
	tokens      map[common.Address]*fakeToken
	sent        []*coretypes.Transaction
	blockNumber uint64

	// receiptDelay is the number of lookups of a receipt answered with NotFound
	receiptDelay int
	// hidden receipts are never returned
	hidden  map[common.Hash]bool
	sendErr error
}

func newFakeChain(name string, chainID int64, baseFee *big.Int) *fakeChain {
	return &fakeChain{
		name:     name,
		chainID:  big.NewInt(chainID),
		baseFee:  baseFee,
		tipCap:   big.NewInt(1_000_000_000),
		balances: make(map[common.Address]*big.Int),
		nonces:   make(map[common.Address]uint64),
		receipts: make(map[common.Hash]*coretypes.Receipt),
		lookups:  make(map[common.Hash]int),
		handlers: make(map[common.Address]contractHandler),
		views:    make(map[common.Address]viewHandler),
		tokens:   make(map[common.Address]*fakeToken),
		hidden:   make(map[common.Hash]bool),
	}
}

func (c *fakeChain) addToken(addr common.Address, token *fakeToken) {
	c.tokens[addr] = token
	c.handlers[addr] = token.execute
	c.views[addr] = token.view
}

// balance and credit must be called with the lock held
func (c *fakeChain) balance(addr common.Address) *big.Int {
	if b, ok := c.balances[addr]; ok {
		return new(big.Int).Set(b)
	}
	return big.NewInt(0)
}

func (c *fakeChain) credit(addr common.Address, amount *big.Int) {
	c.balances[addr] = new(big.Int).Add(c.balance(addr), amount)
}

func (c *fakeChain) setBalance(addr common.Address, amount *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[addr] = new(big.Int).Set(amount)
}

func (c *fakeChain) sentTxs() []*coretypes.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*coretypes.Transaction{}, c.sent...)
}

func (c *fakeChain) receipt(hash common.Hash) *coretypes.Receipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.receipts[hash]
}

func (c *fakeChain) effectiveGasPrice(tx *coretypes.Transaction) *big.Int {
	if tx.Type() == coretypes.LegacyTxType || c.baseFee == nil {
		return tx.GasPrice()
	}
	price := new(big.Int).Add(c.baseFee, tx.GasTipCap())
	if price.Cmp(tx.GasFeeCap()) > 0 {
		return new(big.Int).Set(tx.GasFeeCap())
	}
	return price
}

func (c *fakeChain) ChainID(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(c.chainID), nil
}

func (c *fakeChain) SendRawTransaction(_ context.Context, raw []byte) (common.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return common.Hash{}, c.sendErr
	}
	tx := new(coretypes.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return common.Hash{}, err
	}
	from, err := coretypes.Sender(coretypes.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return common.Hash{}, err
	}
	if tx.Type() == coretypes.DynamicFeeTxType {
		if c.baseFee == nil {
			return common.Hash{}, errors.New("transaction type not supported")
		}
		if tx.GasFeeCap().Cmp(c.baseFee) < 0 {
			return common.Hash{}, errors.New("max fee per gas less than block base fee")
		}
	}
	if tx.Nonce() != c.nonces[from] {
		return common.Hash{}, fmt.Errorf("invalid nonce %d, expected %d", tx.Nonce(), c.nonces[from])
	}
	gasUsed := uint64(gasUsedTransfer)
	if len(tx.Data()) > 0 {
		gasUsed = gasUsedCall
	}
	if tx.Gas() < gasUsed {
		return common.Hash{}, fmt.Errorf("intrinsic gas too low: %d", tx.Gas())
	}
	price := c.effectiveGasPrice(tx)
	fee := new(big.Int).Mul(price, new(big.Int).SetUint64(gasUsed))
	cost := new(big.Int).Add(fee, tx.Value())
	if c.balance(from).Cmp(cost) < 0 {
		return common.Hash{}, errors.New("insufficient funds for gas * price + value")
	}

	c.nonces[from]++
	c.blockNumber++
	c.credit(from, new(big.Int).Neg(fee))
	receipt := &coretypes.Receipt{
		Type:              tx.Type(),
		Status:            coretypes.ReceiptStatusSuccessful,
		TxHash:            tx.Hash(),
		GasUsed:           gasUsed,
		EffectiveGasPrice: price,
		BlockNumber:       new(big.Int).SetUint64(c.blockNumber),
	}
	to := *tx.To()
	c.credit(from, new(big.Int).Neg(tx.Value()))
	c.credit(to, tx.Value())
	if handler, ok := c.handlers[to]; ok {
		logs, err := handler(from, tx)
		if err != nil {
			c.credit(to, new(big.Int).Neg(tx.Value()))
			c.credit(from, tx.Value())
			receipt.Status = coretypes.ReceiptStatusFailed
		} else {
			for i, l := range logs {
				l.TxHash = tx.Hash()
				l.BlockNumber = c.blockNumber
				l.Index = uint(i)
			}
			receipt.Logs = logs
		}
	}
	c.receipts[tx.Hash()] = receipt
	c.sent = append(c.sent, tx)
	return tx.Hash(), nil
}

func (c *fakeChain) BalanceAt(_ context.Context, account common.Address, _ *big.Int) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance(account), nil
}

func (c *fakeChain) TransactionReceipt(_ context.Context, txHash common.Hash) (*coretypes.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	receipt, ok := c.receipts[txHash]
	if !ok || c.hidden[txHash] {
		return nil, ethereum.NotFound
	}
	c.lookups[txHash]++
	if c.lookups[txHash] <= c.receiptDelay {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (c *fakeChain) SuggestGasPrice(_ context.Context) (*big.Int, error) {
	if c.baseFee == nil {
		return big.NewInt(1_000_000_000), nil
	}
	return new(big.Int).Add(c.baseFee, c.tipCap), nil
}

func (c *fakeChain) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	return new(big.Int).Set(c.tipCap), nil
}

func (c *fakeChain) HeaderByNumber(_ context.Context, _ *big.Int) (*coretypes.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	header := &coretypes.Header{Number: new(big.Int).SetUint64(c.blockNumber)}
	if c.baseFee != nil {
		header.BaseFee = new(big.Int).Set(c.baseFee)
	}
	return header, nil
}

func (c *fakeChain) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nonces[account], nil
}

func (c *fakeChain) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	if len(msg.Data) == 0 {
		return gasUsedTransfer, nil
	}
	return estimateCall, nil
}

func (c *fakeChain) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if msg.To == nil {
		return nil, errors.New("call without recipient")
	}
	view, ok := c.views[*msg.To]
	if !ok {
		return nil, fmt.Errorf("%s: no contract at %s", c.name, msg.To.Hex())
	}
	return view(msg)
}

// fakeL2 adds the rollup namespace to a fake chain
type fakeL2 struct {
	*fakeChain
	bridges types.BridgeAddresses
}

func (l *fakeL2) MainContractAddress(_ context.Context) (common.Address, error) {
	return mainContractAddr, nil
}

func (l *fakeL2) BridgeContracts(_ context.Context) (*types.BridgeAddresses, error) {
	bridges := l.bridges
	return &bridges, nil
}

func (l *fakeL2) AllAccountBalances(_ context.Context, account common.Address) (map[common.Address]*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make(map[common.Address]*big.Int)
	if b := l.balance(account); b.Sign() > 0 {
		res[types.EthAddress] = b
	}
	for addr, token := range l.tokens {
		if b := token.balanceOf(account); b.Sign() > 0 {
			res[addr] = b
		}
	}
	return res, nil
}

func (l *fakeL2) EstimateGasL1ToL2(_ context.Context, _ ethereum.CallMsg, _ *big.Int) (uint64, error) {
	return l2GasEstimate, nil
}

// executePriorityOp applies a priority operation on L2 and stores its receipt
func (l *fakeL2) executePriorityOp(l2Hash common.Hash, apply func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	apply()
	l.blockNumber++
	l.receipts[l2Hash] = &coretypes.Receipt{
		Type:        0xff,
		Status:      coretypes.ReceiptStatusSuccessful,
		TxHash:      l2Hash,
		BlockNumber: new(big.Int).SetUint64(l.blockNumber),
	}
}

// canonicalTx is the L2 transaction emitted by NewPriorityRequest
type canonicalTx struct {
	TxType                 *big.Int
	From                   *big.Int
	To                     *big.Int
	GasLimit               *big.Int
	GasPerPubdataByteLimit *big.Int
	MaxFeePerGas           *big.Int
	MaxPriorityFeePerGas   *big.Int
	Paymaster              *big.Int
	Nonce                  *big.Int
	Value                  *big.Int
	Reserved               [4]*big.Int
	Data                   []byte
	Signature              []byte
	FactoryDeps            []*big.Int
	PaymasterInput         []byte
	ReservedDynamic        []byte
}

// bridgeEnv is a pair of fake chains linked by the main contract and the ERC20 bridges
type bridgeEnv struct {
	l1      *fakeChain
	l2      *fakeL2
	l1Token *fakeToken
	l2Token *fakeToken
	nextID  int64
}

func newBridgeEnv(l1BaseFee *big.Int) *bridgeEnv {
	env := &bridgeEnv{
		l1:      newFakeChain("l1", 9, l1BaseFee),
		l1Token: newFakeToken("Crown", "CRWN"),
		l2Token: newFakeToken("Crown", "CRWN"),
	}
	env.l2 = &fakeL2{
		fakeChain: newFakeChain("l2", 270, big.NewInt(250_000_000)),
		bridges: types.BridgeAddresses{
			L1ERC20DefaultBridge: l1BridgeAddr,
			L2ERC20DefaultBridge: l2BridgeAddr,
		},
	}
	env.l2.tipCap = big.NewInt(0)

	env.l1.addToken(l1TokenAddr, env.l1Token)
	env.l1.handlers[mainContractAddr] = env.requestL2Transaction
	env.l1.views[mainContractAddr] = env.mainContractView
	env.l1.handlers[l1BridgeAddr] = env.bridgeDeposit

	env.l2.addToken(l2TokenAddr, env.l2Token)
	env.l2.handlers[l2BridgeAddr] = env.bridgeWithdraw
	env.l2.views[l2BridgeAddr] = env.l2BridgeView
	env.l2.handlers[types.L2EthTokenAddress] = func(_ common.Address, tx *coretypes.Transaction) ([]*coretypes.Log, error) {
		_, _, err := decodeCall(contracts.L2EthToken, tx.Data())
		return nil, err
	}
	env.l2.views[types.NonceHolderAddress] = func(msg ethereum.CallMsg) ([]byte, error) {
		method, _, err := decodeCall(contracts.NonceHolder, msg.Data)
		if err != nil {
			return nil, err
		}
		return method.Outputs.Pack(big.NewInt(deploymentNonce))
	}
	return env
}

func (e *bridgeEnv) mainContractView(msg ethereum.CallMsg) ([]byte, error) {
	method, args, err := decodeCall(contracts.MainContract, msg.Data)
	if err != nil {
		return nil, err
	}
	if method.Name != "l2TransactionBaseCost" {
		return nil, fmt.Errorf("unsupported view %s", method.Name)
	}
	baseCost := fees.DefaultParams().BaseCost(args[0].(*big.Int), args[1].(*big.Int), args[2].(*big.Int))
	return method.Outputs.Pack(baseCost)
}

func (e *bridgeEnv) l2BridgeView(msg ethereum.CallMsg) ([]byte, error) {
	method, args, err := decodeCall(contracts.L2Bridge, msg.Data)
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "l2TokenAddress":
		if args[0].(common.Address) == l1TokenAddr {
			return method.Outputs.Pack(l2TokenAddr)
		}
		// derived for any token, deployed or not
		return method.Outputs.Pack(common.BytesToAddress(crypto.Keccak256(l2BridgeAddr.Bytes(), args[0].(common.Address).Bytes())))
	case "l1TokenAddress":
		if args[0].(common.Address) == l2TokenAddr {
			return method.Outputs.Pack(l1TokenAddr)
		}
		return method.Outputs.Pack(common.Address{})
	}
	return nil, fmt.Errorf("unsupported view %s", method.Name)
}

// checkBaseCost reverts priority operations whose value does not cover the base cost
func (e *bridgeEnv) checkBaseCost(tx *coretypes.Transaction, l2GasLimit, gasPerPubdata, l2Value *big.Int) error {
	baseCost := fees.DefaultParams().BaseCost(e.l1.effectiveGasPrice(tx), l2GasLimit, gasPerPubdata)
	required := new(big.Int).Add(baseCost, l2Value)
	if tx.Value().Cmp(required) < 0 {
		return fmt.Errorf("msg.value %s below %s", tx.Value(), required)
	}
	return nil
}

// priorityLog returns the NewPriorityRequest log of an L2 call and the hash of the L2 transaction
func (e *bridgeEnv) priorityLog(sender, contractL2 common.Address, l2Value *big.Int, calldata []byte,
	l2GasLimit, gasPerPubdata *big.Int, factoryDeps [][]byte, l1Value *big.Int) (*coretypes.Log, common.Hash, error) {
	event := contracts.MainContract.ABI().Events["NewPriorityRequest"]
	id := big.NewInt(e.nextID)
	e.nextID++
	depHashes := make([]*big.Int, 0, len(factoryDeps))
	for _, dep := range factoryDeps {
		depHashes = append(depHashes, crypto.Keccak256Hash(dep).Big())
	}
	tx := canonicalTx{
		TxType:                 big.NewInt(255),
		From:                   sender.Big(),
		To:                     contractL2.Big(),
		GasLimit:               l2GasLimit,
		GasPerPubdataByteLimit: gasPerPubdata,
		MaxFeePerGas:           big.NewInt(fees.FairL2GasPrice),
		MaxPriorityFeePerGas:   big.NewInt(0),
		Paymaster:              big.NewInt(0),
		Nonce:                  id,
		Value:                  l2Value,
		Reserved:               [4]*big.Int{l1Value, big.NewInt(0), big.NewInt(0), big.NewInt(0)},
		Data:                   calldata,
		Signature:              []byte{},
		FactoryDeps:            depHashes,
		PaymasterInput:         []byte{},
		ReservedDynamic:        []byte{},
	}
	encodedTx, err := abi.Arguments{event.Inputs[3]}.Pack(tx)
	if err != nil {
		return nil, common.Hash{}, err
	}
	l2Hash := crypto.Keccak256Hash(encodedTx)
	data, err := event.Inputs.Pack(id, [32]byte(l2Hash), uint64(1700000000), tx, factoryDeps)
	if err != nil {
		return nil, common.Hash{}, err
	}
	return &coretypes.Log{
		Address: mainContractAddr,
		Topics:  []common.Hash{event.ID},
		Data:    data,
	}, l2Hash, nil
}

func (e *bridgeEnv) requestL2Transaction(from common.Address, tx *coretypes.Transaction) ([]*coretypes.Log, error) {
	method, args, err := decodeCall(contracts.MainContract, tx.Data())
	if err != nil {
		return nil, err
	}
	if method.Name != "requestL2Transaction" {
		return nil, fmt.Errorf("unsupported method %s", method.Name)
	}
	contractL2 := args[0].(common.Address)
	l2Value := args[1].(*big.Int)
	l2GasLimit := args[3].(*big.Int)
	gasPerPubdata := args[4].(*big.Int)
	if err := e.checkBaseCost(tx, l2GasLimit, gasPerPubdata, l2Value); err != nil {
		return nil, err
	}
	priorityLog, l2Hash, err := e.priorityLog(from, contractL2, l2Value, args[2].([]byte),
		l2GasLimit, gasPerPubdata, args[5].([][]byte), tx.Value())
	if err != nil {
		return nil, err
	}
	e.l2.executePriorityOp(l2Hash, func() {
		e.l2.credit(contractL2, l2Value)
	})
	return []*coretypes.Log{priorityLog}, nil
}

func (e *bridgeEnv) bridgeDeposit(from common.Address, tx *coretypes.Transaction) ([]*coretypes.Log, error) {
	method, args, err := decodeCall(contracts.L1ERC20Bridge, tx.Data())
	if err != nil {
		return nil, err
	}
	if method.Name != "deposit" {
		return nil, fmt.Errorf("unsupported method %s", method.Name)
	}
	receiver := args[0].(common.Address)
	token := args[1].(common.Address)
	amount := args[2].(*big.Int)
	l2GasLimit := args[3].(*big.Int)
	gasPerPubdata := args[4].(*big.Int)
	if token != l1TokenAddr {
		return nil, fmt.Errorf("token %s not supported", token.Hex())
	}
	if err := e.checkBaseCost(tx, l2GasLimit, gasPerPubdata, big.NewInt(0)); err != nil {
		return nil, err
	}
	allowance := e.l1Token.allowance(from, l1BridgeAddr)
	if allowance.Cmp(amount) < 0 {
		return nil, errors.New("insufficient allowance")
	}
	if err := e.l1Token.move(from, l1BridgeAddr, amount); err != nil {
		return nil, err
	}
	e.l1Token.setAllowance(from, l1BridgeAddr, allowance.Sub(allowance, amount))

	finalize, err := contracts.L2Bridge.Encode("finalizeDeposit", from, receiver, token, amount, []byte{})
	if err != nil {
		return nil, err
	}
	priorityLog, l2Hash, err := e.priorityLog(resolver.ApplyL1ToL2Alias(l1BridgeAddr), l2BridgeAddr,
		big.NewInt(0), finalize, l2GasLimit, gasPerPubdata, nil, tx.Value())
	if err != nil {
		return nil, err
	}
	e.l2.executePriorityOp(l2Hash, func() {
		e.l2Token.mint(receiver, amount)
	})
	return []*coretypes.Log{priorityLog}, nil
}

func (e *bridgeEnv) bridgeWithdraw(from common.Address, tx *coretypes.Transaction) ([]*coretypes.Log, error) {
	method, args, err := decodeCall(contracts.L2Bridge, tx.Data())
	if err != nil {
		return nil, err
	}
	if method.Name != "withdraw" {
		return nil, fmt.Errorf("unsupported method %s", method.Name)
	}
	if args[1].(common.Address) != l2TokenAddr {
		return nil, fmt.Errorf("token %s not supported", args[1].(common.Address).Hex())
	}
	// burn
	return nil, e.l2Token.move(from, common.Address{}, args[2].(*big.Int))
}
