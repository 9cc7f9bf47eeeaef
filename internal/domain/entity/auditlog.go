package entity

// AuditAction is the fixed vocabulary of logged actions.
type AuditAction string

const (
	ActionCreate     AuditAction = "create"
	ActionUpdate     AuditAction = "update"
	ActionView       AuditAction = "view"
	ActionDelete     AuditAction = "delete"
	ActionLogin      AuditAction = "login"
	ActionUserCreate AuditAction = "user_create"
	ActionUserUpdate AuditAction = "user_update"
	ActionUserDelete AuditAction = "user_delete"
)

// AuditLog is an append-only record of who did what. Entries are never
// mutated or deleted and are read newest-first.
type AuditLog struct {
	ID         string      `gorm:"primaryKey"`
	Action     AuditAction `gorm:"type:text;not null"`
	EntityType string      `gorm:"not null"`
	EntityID   string      `gorm:"not null"`
	EntityName string
	UserEmail  string
	UserName   string
	Details    string
	CreatedAt  int64 `gorm:"not null"`
}
