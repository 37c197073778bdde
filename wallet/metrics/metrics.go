package metrics

import (
	prometheusClient "github.com/prometheus/client_golang/prometheus"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/prometheus"
)

const (
	prefix                 = "wallet_"
	numberOfTxsSent        = prefix + "number_of_txs_sent"
	numberOfTxsInError     = prefix + "number_of_txs_in_error"
	numberOfApprovals      = prefix + "number_of_approvals"
	numberOfDeposits       = prefix + "number_of_deposits"
	numberOfWithdrawals    = prefix + "number_of_withdrawals"
	numberOfPriorityOpsL2  = prefix + "number_of_priority_ops_confirmed"
	lastL1ConfirmationTime = prefix + "last_l1_confirmation_time"
	lastL2ConfirmationTime = prefix + "last_l2_confirmation_time"
)

// Register the metrics for the wallet package
func Register() {
	counters := []prometheusClient.CounterOpts{
		{
			Name: numberOfTxsSent,
			Help: "[WALLET] number of transactions sent on any layer",
		},
		{
			Name: numberOfTxsInError,
			Help: "[WALLET] number of transactions that could not be sent",
		},
		{
			Name: numberOfApprovals,
			Help: "[WALLET] number of ERC20 approvals sent",
		},
		{
			Name: numberOfDeposits,
			Help: "[WALLET] number of deposits sent",
		},
		{
			Name: numberOfWithdrawals,
			Help: "[WALLET] number of withdrawals sent",
		},
		{
			Name: numberOfPriorityOpsL2,
			Help: "[WALLET] number of priority operations confirmed on L2",
		},
	}
	gauges := []prometheusClient.GaugeOpts{
		{
			Name: lastL1ConfirmationTime,
			Help: "[WALLET] seconds to confirm the last L1 transaction of a priority operation",
		},
		{
			Name: lastL2ConfirmationTime,
			Help: "[WALLET] seconds to confirm the last priority operation on L2",
		},
	}
	prometheus.RegisterCounters(counters...)
	prometheus.RegisterGauges(gauges...)
	log.Info("Registered prometheus wallet metrics")
}

// TxSent increments the counter of sent transactions
func TxSent() {
	prometheus.CounterInc(numberOfTxsSent)
}

// TxInError increments the counter of transactions that failed to be sent
func TxInError() {
	prometheus.CounterInc(numberOfTxsInError)
}

func ApprovalSent() {
	prometheus.CounterInc(numberOfApprovals)
}

func DepositSent() {
	prometheus.CounterInc(numberOfDeposits)
}

func WithdrawalSent() {
	prometheus.CounterInc(numberOfWithdrawals)
}

// PriorityOpConfirmed increments the counter of priority operations executed on L2
func PriorityOpConfirmed() {
	prometheus.CounterInc(numberOfPriorityOpsL2)
}

// L1ConfirmationTime sets the gauge of the last L1 confirmation time
func L1ConfirmationTime(seconds float64) {
	prometheus.GaugeSet(lastL1ConfirmationTime, seconds)
}

// L2ConfirmationTime sets the gauge of the last L2 confirmation time
func L2ConfirmationTime(seconds float64) {
	prometheus.GaugeSet(lastL2ConfirmationTime, seconds)
}
