package ord

// CreativeEridInfo carries the marking tokens the registry issues when a
// creative is submitted or amended. Both tokens always originate from the
// registry response; they cannot be derived locally.
type CreativeEridInfo struct {
	Marker string
	Erid   string
}
