package responses

type Professional struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	FullNameNe string `json:"full_name_ne,omitempty"`
	Type       string `json:"type"`
	Specialty  string `json:"specialty,omitempty"`
	City       string `json:"city,omitempty"`
	Claimed    bool   `json:"claimed"`
}

type ProfessionalDetail struct {
	Professional
	CouncilNumber string   `json:"council_number,omitempty"`
	Clinics       []Clinic `json:"clinics"`
}

type Claim struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professional_id"`
	Status         string `json:"status"`
}

type ClaimDetail struct {
	Claim
	Phone         string `json:"phone"`
	CouncilNumber string `json:"council_number"`
	DocumentURL   string `json:"document_url"`
}

type ClaimUploadURL struct {
	UploadURL   string `json:"upload_url"`
	DocumentKey string `json:"document_key"`
	ExpiresInS  int    `json:"expires_in_seconds"`
}
