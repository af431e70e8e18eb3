package models

// AttrError is a per-attribute error reported by the bridge
type AttrError struct {
	Type        int
	Address     string
	Description string
}

func (e AttrError) Error() string {
	return e.Description
}

// Updates is the bridge's answer to a state command: the values it accepted
// and the attributes it rejected, keyed by attribute name.
type Updates struct {
	Accepted map[string]interface{}
	Errors   map[string]AttrError
}

// NewUpdates creates an empty Updates
func NewUpdates() Updates {
	return Updates{
		Accepted: make(map[string]interface{}),
		Errors:   make(map[string]AttrError),
	}
}

// OK reports whether every attribute was accepted
func (u Updates) OK() bool {
	return len(u.Errors) == 0
}
