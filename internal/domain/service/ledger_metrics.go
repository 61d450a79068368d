package service

// LedgerMetrics records business counters for the activation and reward workflows.
type LedgerMetrics interface {
	// ObserveActivation counts an activation attempt by outcome ("success" or an error code).
	ObserveActivation(outcome string)

	// ObservePoints counts points credited from source ("activation" or "reward").
	ObservePoints(source string, points int)

	// ObserveGrantsIssued counts reward grants created by activations.
	ObserveGrantsIssued(n int)

	// ObserveClaim counts a claim attempt by outcome.
	ObserveClaim(outcome string)

	// ObserveExpired counts grants moved to expired.
	ObserveExpired(n int)
}
