//go:build !linux

package vmem

// Map is unavailable off Linux; the harness library still builds so its
// logic can be tested against fake mappers everywhere.
func (System) Map(req Request) (Region, error) {
	return Region{}, ErrUnsupported
}

// Unmap is unavailable off Linux.
func (System) Unmap(r Region) error {
	return ErrUnsupported
}
