package entity

// Role is the access tier of a user account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOfficer Role = "officer"
	RoleUser    Role = "user"
)

// User is an account with role-based and approval-based access.
//
// CAD (USR-NNNNN) is only assigned at approval time; pending accounts keep
// it empty. IsMaster is orthogonal to Role and marks the single seeded
// highest-privilege account, the only one allowed to delete other users.
type User struct {
	ID           string `gorm:"primaryKey"`
	FullName     string `gorm:"not null"`
	DisplayName  string
	Email        string `gorm:"not null;index"`
	Role         Role   `gorm:"type:text;not null;default:'user'"`
	CAD          string
	Approved     bool `gorm:"not null;default:false"`
	ApprovedBy   string
	ApprovedDate int64
	IsMaster     bool  `gorm:"not null;default:false"`
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null;autoUpdateTime:false"`
}

// Pending reports whether the account is still waiting for approval.
// Admins are never pending.
func (u *User) Pending() bool {
	return u.Role != RoleAdmin && !u.Approved
}

// Name returns the presentation name, preferring the display override.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
