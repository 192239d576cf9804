package helpers

import "strings"

const (
	TransferUserRejected      = "user_rejected"
	TransferInsufficientFunds = "insufficient_funds"
	TransferUnknown           = "unknown"
)

var rejectedPatterns = []string{
	"user rejected",
	"rejected the request",
	"transaction cancelled",
	"transaction canceled",
	"user denied",
}

var insufficientPatterns = []string{
	"insufficient funds",
	"insufficient lamports",
	"insufficient balance",
	"attempt to debit an account but found no record of a prior credit",
}

// ClassifyTransferError maps a wallet or RPC failure message to a kind
func ClassifyTransferError(msg string) string {
	lower := strings.ToLower(msg)
	for _, p := range rejectedPatterns {
		if strings.Contains(lower, p) {
			return TransferUserRejected
		}
	}
	for _, p := range insufficientPatterns {
		if strings.Contains(lower, p) {
			return TransferInsufficientFunds
		}
	}
	return TransferUnknown
}

// TransferErrorMessage is the user-facing text for a kind
func TransferErrorMessage(kind string) string {
	switch kind {
	case TransferUserRejected:
		return "Transaction was cancelled in your wallet."
	case TransferInsufficientFunds:
		return "Insufficient SOL balance for this transfer."
	default:
		return "Transaction failed. Please try again."
	}
}
