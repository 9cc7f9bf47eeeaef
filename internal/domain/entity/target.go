package entity

// TargetPriority ranks a watchlist entry.
type TargetPriority string

const (
	PriorityBaixa   TargetPriority = "baixa"
	PriorityMedia   TargetPriority = "media"
	PriorityAlta    TargetPriority = "alta"
	PriorityCritica TargetPriority = "critica"
)

// Target is a watchlist entry referencing a Person by business key.
//
// PersonCAD is a weak reference: if the person record disappears the target
// stays in storage and views that need person details skip it.
type Target struct {
	ID           string         `gorm:"primaryKey"`
	PersonCAD    string         `gorm:"not null;index"`
	Priority     TargetPriority `gorm:"type:text;not null"`
	Reason       string
	Observations string
	AddedBy      string
	AddedByName  string
	CreatedDate  int64 `gorm:"not null"`
}
