package ord

// ExternalIDItems is one page of a resource listing: the external ids on
// this page plus the registry paging envelope.
type ExternalIDItems struct {
	ExternalIDs     []string
	TotalItemsCount int64
	Limit           int64
}
