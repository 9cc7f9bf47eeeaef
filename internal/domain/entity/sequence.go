package entity

// Sequence namespaces for business-key allocation.
const (
	SequencePersonCAD = "person_cad"
	SequenceUserCAD   = "user_cad"
)

// Sequence is a per-namespace monotonic counter backing CAD allocation.
// Incremented inside a transaction so two near-simultaneous registrations
// can never be handed the same number.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}
