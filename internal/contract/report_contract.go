package contract

// SummaryReport is a read-only projection over persons and targets,
// consumed by printable report rendering. No feedback into the data model.
type SummaryReport struct {
	TotalPersons int64            `json:"total_persons"`
	TotalTargets int64            `json:"total_targets"`
	Faccionados  int64            `json:"faccionados"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByDanger     map[string]int64 `json:"by_danger_level"`
	ByPriority   map[string]int64 `json:"targets_by_priority"`
	GeneratedAt  string           `json:"generated_at"`
}
