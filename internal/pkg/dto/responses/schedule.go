package responses

type Schedule struct {
	ID                 string `json:"id"`
	ProfessionalID     string `json:"professional_id"`
	DayOfWeek          int    `json:"day_of_week"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	MaxPatientsPerSlot int    `json:"max_patients_per_slot"`
	EffectiveFrom      string `json:"effective_from"`
	EffectiveTo        string `json:"effective_to,omitempty"`
	IsActive           bool   `json:"is_active"`
}

type Leave struct {
	ID             string `json:"id"`
	ProfessionalID string `json:"professional_id"`
	LeaveDate      string `json:"leave_date"`
	StartTime      string `json:"start_time,omitempty"`
	EndTime        string `json:"end_time,omitempty"`
	Reason         string `json:"reason,omitempty"`
}
