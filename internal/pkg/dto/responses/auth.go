package responses

type AuthSession struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ClinicID  string `json:"clinic_id,omitempty"`
	ExpiresAt string `json:"expires_at"`
}
