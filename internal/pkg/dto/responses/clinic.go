package responses

type Clinic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameNe   string `json:"name_ne,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Verified bool   `json:"verified"`
}
