package contracts

// MainContractABI is the subset of the rollup main contract used by the wallet
const MainContractABI = `[
	{"type":"function","name":"requestL2Transaction","stateMutability":"payable",
	 "inputs":[
		{"name":"_contractL2","type":"address"},
		{"name":"_l2Value","type":"uint256"},
		{"name":"_calldata","type":"bytes"},
		{"name":"_l2GasLimit","type":"uint256"},
		{"name":"_l2GasPerPubdataByteLimit","type":"uint256"},
		{"name":"_factoryDeps","type":"bytes[]"},
		{"name":"_refundRecipient","type":"address"}],
	 "outputs":[{"name":"canonicalTxHash","type":"bytes32"}]},
	{"type":"function","name":"l2TransactionBaseCost","stateMutability":"view",
	 "inputs":[
		{"name":"_gasPrice","type":"uint256"},
		{"name":"_l2GasLimit","type":"uint256"},
		{"name":"_l2GasPerPubdataByteLimit","type":"uint256"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"NewPriorityRequest","anonymous":false,
	 "inputs":[
		{"name":"txId","type":"uint256","indexed":false},
		{"name":"txHash","type":"bytes32","indexed":false},
		{"name":"expirationTimestamp","type":"uint64","indexed":false},
		{"name":"transaction","type":"tuple","indexed":false,"components":[
			{"name":"txType","type":"uint256"},
			{"name":"from","type":"uint256"},
			{"name":"to","type":"uint256"},
			{"name":"gasLimit","type":"uint256"},
			{"name":"gasPerPubdataByteLimit","type":"uint256"},
			{"name":"maxFeePerGas","type":"uint256"},
			{"name":"maxPriorityFeePerGas","type":"uint256"},
			{"name":"paymaster","type":"uint256"},
			{"name":"nonce","type":"uint256"},
			{"name":"value","type":"uint256"},
			{"name":"reserved","type":"uint256[4]"},
			{"name":"data","type":"bytes"},
			{"name":"signature","type":"bytes"},
			{"name":"factoryDeps","type":"uint256[]"},
			{"name":"paymasterInput","type":"bytes"},
			{"name":"reservedDynamic","type":"bytes"}]},
		{"name":"factoryDeps","type":"bytes[]","indexed":false}]}
]`

// L1ERC20BridgeABI is the subset of the L1 default ERC20 bridge used by the wallet
const L1ERC20BridgeABI = `[
	{"type":"function","name":"deposit","stateMutability":"payable",
	 "inputs":[
		{"name":"_l2Receiver","type":"address"},
		{"name":"_l1Token","type":"address"},
		{"name":"_amount","type":"uint256"},
		{"name":"_l2TxGasLimit","type":"uint256"},
		{"name":"_l2TxGasPerPubdataByte","type":"uint256"},
		{"name":"_refundRecipient","type":"address"}],
	 "outputs":[{"name":"l2TxHash","type":"bytes32"}]},
	{"type":"function","name":"l2Bridge","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"l2TokenAddress","stateMutability":"view",
	 "inputs":[{"name":"_l1Token","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]}
]`

// L2BridgeABI is the subset of the L2 default ERC20 bridge used by the wallet
const L2BridgeABI = `[
	{"type":"function","name":"withdraw","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"_l1Receiver","type":"address"},
		{"name":"_l2Token","type":"address"},
		{"name":"_amount","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"finalizeDeposit","stateMutability":"payable",
	 "inputs":[
		{"name":"_l1Sender","type":"address"},
		{"name":"_l2Receiver","type":"address"},
		{"name":"_l1Token","type":"address"},
		{"name":"_amount","type":"uint256"},
		{"name":"_data","type":"bytes"}],
	 "outputs":[]},
	{"type":"function","name":"l2TokenAddress","stateMutability":"view",
	 "inputs":[{"name":"_l1Token","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"l1TokenAddress","stateMutability":"view",
	 "inputs":[{"name":"_l2Token","type":"address"}],
	 "outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"l1Bridge","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"address"}]}
]`

// ERC20ABI is the standard token interface plus its metadata getters
const ERC20ABI = `[
	{"type":"function","name":"name","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"allowance","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable",
	 "inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

// L2EthTokenABI is the subset of the L2 ETH system contract used by the wallet
const L2EthTokenABI = `[
	{"type":"function","name":"withdraw","stateMutability":"payable",
	 "inputs":[{"name":"_l1Receiver","type":"address"}],
	 "outputs":[]}
]`

// NonceHolderABI is the subset of the L2 nonce holder system contract used by the wallet
const NonceHolderABI = `[
	{"type":"function","name":"getDeploymentNonce","stateMutability":"view",
	 "inputs":[{"name":"_address","type":"address"}],
	 "outputs":[{"name":"deploymentNonce","type":"uint256"}]}
]`
