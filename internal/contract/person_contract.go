package contract

// MaxPersonPhotos caps the ordered photo list of a person record.
const MaxPersonPhotos = 6

type PersonResponse struct {
	ID       string `json:"id"`
	CAD      string `json:"cad"`
	FullName string `json:"full_name"`
	Nickname string `json:"nickname,omitempty"`
	Status   string `json:"status"`

	CPF                string `json:"cpf,omitempty"`
	RG                 string `json:"rg,omitempty"`
	BirthDate          string `json:"birth_date,omitempty"`
	MotherName         string `json:"mother_name,omitempty"`
	FatherName         string `json:"father_name,omitempty"`
	Sex                string `json:"sex,omitempty"`
	SkinColor          string `json:"skin_color,omitempty"`
	Height             string `json:"height,omitempty"`
	Hair               string `json:"hair,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	NaturalCity        string `json:"natural_city,omitempty"`
	NaturalState       string `json:"natural_state,omitempty"`

	DangerLevel      string `json:"danger_level,omitempty"`
	Faccionado       bool   `json:"faccionado"`
	CriminalArticles string `json:"criminal_articles,omitempty"`
	Observations     string `json:"observations,omitempty"`

	Street            string `json:"street,omitempty"`
	Number            string `json:"number,omitempty"`
	Neighborhood      string `json:"neighborhood,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	ZipCode           string `json:"zip_code,omitempty"`
	LastKnownLocation string `json:"last_known_location,omitempty"`

	Photos     []string `json:"photos"`
	Documents  []string `json:"documents,omitempty"`
	Associates []string `json:"associates,omitempty"`

	LastEditedBy    string `json:"last_edited_by,omitempty"`
	LastEditedByCAD string `json:"last_edited_by_cad,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type CreatePersonRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Nickname string `json:"nickname" validate:"omitempty,max=80"`
	Status   string `json:"status" validate:"omitempty,oneof=procurado preso em_liberdade morto"`

	CPF                string `json:"cpf" validate:"omitempty,max=20"`
	RG                 string `json:"rg" validate:"omitempty,max=20"`
	BirthDate          string `json:"birth_date" validate:"omitempty,max=30"`
	MotherName         string `json:"mother_name" validate:"omitempty,max=120"`
	FatherName         string `json:"father_name" validate:"omitempty,max=120"`
	Sex                string `json:"sex" validate:"omitempty,oneof=masculino feminino"`
	SkinColor          string `json:"skin_color" validate:"omitempty,max=40"`
	Height             string `json:"height" validate:"omitempty,max=20"`
	Hair               string `json:"hair" validate:"omitempty,max=40"`
	RegistrationNumber string `json:"registration_number" validate:"omitempty,max=40"`
	NaturalCity        string `json:"natural_city" validate:"omitempty,max=80"`
	NaturalState       string `json:"natural_state" validate:"omitempty,max=40"`

	DangerLevel      string `json:"danger_level" validate:"omitempty,oneof=baixa media alta"`
	Faccionado       bool   `json:"faccionado"`
	CriminalArticles string `json:"criminal_articles" validate:"omitempty,max=500"`
	Observations     string `json:"observations" validate:"omitempty,max=2000"`

	Street            string `json:"street" validate:"omitempty,max=120"`
	Number            string `json:"number" validate:"omitempty,max=20"`
	Neighborhood      string `json:"neighborhood" validate:"omitempty,max=80"`
	City              string `json:"city" validate:"omitempty,max=80"`
	State             string `json:"state" validate:"omitempty,max=40"`
	ZipCode           string `json:"zip_code" validate:"omitempty,max=20"`
	LastKnownLocation string `json:"last_known_location" validate:"omitempty,max=500"`

	Photos     []string `json:"photos" validate:"omitempty,max=6,nodupes,dive,required,max=500"`
	Documents  []string `json:"documents" validate:"omitempty,max=20,nodupes,dive,required,max=500"`
	Associates []string `json:"associates" validate:"omitempty,max=50,nodupes,dive,required,cadref"`
}

// UpdatePersonRequest merges supplied fields over the stored record.
// Identity fields (id, cad, created_at) have no place here: they are
// immutable no matter what the caller sends.
type UpdatePersonRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=120"`
	Nickname *string `json:"nickname" validate:"omitempty,max=80"`
	Status   *string `json:"status" validate:"omitempty,oneof=procurado preso em_liberdade morto"`

	CPF                *string `json:"cpf" validate:"omitempty,max=20"`
	RG                 *string `json:"rg" validate:"omitempty,max=20"`
	BirthDate          *string `json:"birth_date" validate:"omitempty,max=30"`
	MotherName         *string `json:"mother_name" validate:"omitempty,max=120"`
	FatherName         *string `json:"father_name" validate:"omitempty,max=120"`
	Sex                *string `json:"sex" validate:"omitempty,oneof=masculino feminino"`
	SkinColor          *string `json:"skin_color" validate:"omitempty,max=40"`
	Height             *string `json:"height" validate:"omitempty,max=20"`
	Hair               *string `json:"hair" validate:"omitempty,max=40"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=40"`
	NaturalCity        *string `json:"natural_city" validate:"omitempty,max=80"`
	NaturalState       *string `json:"natural_state" validate:"omitempty,max=40"`

	DangerLevel      *string `json:"danger_level" validate:"omitempty,oneof=baixa media alta"`
	Faccionado       *bool   `json:"faccionado"`
	CriminalArticles *string `json:"criminal_articles" validate:"omitempty,max=500"`
	Observations     *string `json:"observations" validate:"omitempty,max=2000"`

	Street            *string `json:"street" validate:"omitempty,max=120"`
	Number            *string `json:"number" validate:"omitempty,max=20"`
	Neighborhood      *string `json:"neighborhood" validate:"omitempty,max=80"`
	City              *string `json:"city" validate:"omitempty,max=80"`
	State             *string `json:"state" validate:"omitempty,max=40"`
	ZipCode           *string `json:"zip_code" validate:"omitempty,max=20"`
	LastKnownLocation *string `json:"last_known_location" validate:"omitempty,max=500"`

	Photos     []string `json:"photos" validate:"omitempty,max=6,nodupes,dive,required,max=500"`
	Documents  []string `json:"documents" validate:"omitempty,max=20,nodupes,dive,required,max=500"`
	Associates []string `json:"associates" validate:"omitempty,max=50,nodupes,dive,required,cadref"`
}
