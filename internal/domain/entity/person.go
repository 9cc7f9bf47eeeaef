package entity

// PersonStatus tracks the case status of a registered person.
type PersonStatus string

const (
	StatusProcurado   PersonStatus = "procurado"
	StatusPreso       PersonStatus = "preso"
	StatusEmLiberdade PersonStatus = "em_liberdade"
	StatusMorto       PersonStatus = "morto"
)

// DangerLevel classifies the risk profile of a person.
type DangerLevel string

const (
	DangerBaixa DangerLevel = "baixa"
	DangerMedia DangerLevel = "media"
	DangerAlta  DangerLevel = "alta"
)

// Person is a registry record for an individual of interest.
//
// CAD is the human-facing sequential business key (CAD-NNNNN), assigned
// once at creation and immutable afterwards. Associates hold CAD values of
// other persons; these are weak references with no integrity enforcement,
// a dangling CAD simply resolves to nothing.
type Person struct {
	ID       string       `gorm:"primaryKey"`
	CAD      string       `gorm:"uniqueIndex;not null" json:"cad"`
	FullName string       `gorm:"not null" json:"full_name"`
	Nickname string       `json:"nickname"`
	Status   PersonStatus `gorm:"type:text;not null;default:'procurado'" json:"status"`

	// Personal documents & info
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
	BirthDate          string `json:"birth_date"`
	MotherName         string `json:"mother_name"`
	FatherName         string `json:"father_name"`
	Sex                string `json:"sex"`
	SkinColor          string `json:"skin_color"`
	Height             string `json:"height"`
	Hair               string `json:"hair"`
	RegistrationNumber string `json:"registration_number"`
	NaturalCity        string `json:"natural_city"`
	NaturalState       string `json:"natural_state"`

	// Risk profile
	DangerLevel      DangerLevel `gorm:"type:text" json:"danger_level"`
	Faccionado       bool        `gorm:"not null;default:false" json:"faccionado"`
	CriminalArticles string      `json:"criminal_articles"`
	Observations     string      `json:"observations"`

	// Address
	Street            string `json:"street"`
	Number            string `json:"number"`
	Neighborhood      string `json:"neighborhood"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zip_code"`
	LastKnownLocation string `json:"last_known_location"`

	// Attachments & relations
	Photos     StringList `gorm:"serializer:json" json:"photos"`
	Documents  StringList `gorm:"serializer:json" json:"documents"`
	Associates StringList `gorm:"serializer:json" json:"associates"`

	// Audit trail
	LastEditedBy    string `json:"last_edited_by"`
	LastEditedByCAD string `json:"last_edited_by_cad"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:false"`
}
