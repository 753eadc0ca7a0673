package finvault

// CheckResult captures any non-error effect of a Check call. It is
// mainly informational: how much gas the transaction may consume once
// delivered.
type CheckResult struct {
	// Log contains a short human readable summary
	Log string
	// GasAllocated is an estimate of the cost of delivery
	GasAllocated int64
}

// DeliverResult captures any non-error effect of a Deliver call.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a
	// newly created entity
	Data []byte
	// Log contains a short human readable summary
	Log string
}
