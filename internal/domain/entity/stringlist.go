package entity

// StringList is an ordered list of strings persisted as a JSON text column.
type StringList []string
