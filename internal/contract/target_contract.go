package contract

// PersonSummary is the slice of a person record a watchlist view needs.
// Nil when the target's CAD reference is dangling.
type PersonSummary struct {
	ID          string `json:"id"`
	CAD         string `json:"cad"`
	FullName    string `json:"full_name"`
	Nickname    string `json:"nickname,omitempty"`
	Status      string `json:"status"`
	DangerLevel string `json:"danger_level,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

type TargetResponse struct {
	ID           string         `json:"id"`
	PersonCAD    string         `json:"person_cad"`
	Priority     string         `json:"priority"`
	Reason       string         `json:"reason,omitempty"`
	Observations string         `json:"observations,omitempty"`
	AddedBy      string         `json:"added_by,omitempty"`
	AddedByName  string         `json:"added_by_name,omitempty"`
	CreatedDate  string         `json:"created_date"`
	Person       *PersonSummary `json:"person,omitempty"`
}

type CreateTargetRequest struct {
	PersonCAD    string `json:"person_cad" validate:"required,cadref"`
	Priority     string `json:"priority" validate:"required,oneof=baixa media alta critica"`
	Reason       string `json:"reason" validate:"omitempty,max=500"`
	Observations string `json:"observations" validate:"omitempty,max=2000"`
}
