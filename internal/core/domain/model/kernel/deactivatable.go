package kernel

// Deactivatable is the shared soft-delete capability of catalog aggregates.
// Products, suppliers and users are never physically deleted; deleting them
// means deactivating them. Deactivation is unconditional and idempotent.
type Deactivatable interface {
	// SetActive switches the aggregate's active flag.
	SetActive(active bool)

	// IsActive reports whether the aggregate is currently active.
	IsActive() bool
}
