package constants

// Ledger reasons
const (
	ReasonWithdrawalCompleted = "Withdrawal completed"
	ReasonTopUpCompleted      = "Top-up completed"
	ReasonCardNotFound        = "Card not found"
	ReasonInvalidPIN          = "Invalid PIN"
	ReasonInsufficientFunds   = "Insufficient funds"
	ReasonInvalidAmount       = "Invalid amount"
	ReasonInvalidKind         = "Invalid transaction type"
	ReasonInvalidCardID       = "Invalid card id"
	ReasonProcessingError     = "Processing error"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
)
