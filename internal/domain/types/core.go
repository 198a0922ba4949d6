package types

// SchoolID identifies a school entity (the DBN in the NYC Open Data sets).
type SchoolID string

// String returns the string form of the school identifier.
func (id SchoolID) String() string { return string(id) }

// School is a NYC area school as returned by the remote service.
type School struct {
	ID   SchoolID `json:"dbn" yaml:"dbn"`
	Name string   `json:"school_name" yaml:"school_name"`
}

// Selection is the school the user chose last.
type Selection struct {
	ID   SchoolID `json:"id"`
	Name string   `json:"name"`
}
