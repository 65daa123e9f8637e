package requests

type CreateSchedule struct {
	ProfessionalID     string `json:"professionalId" validate:"required"`
	DayOfWeek          int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime          string `json:"startTime" validate:"required,time_hhmm"`
	EndTime            string `json:"endTime" validate:"required,time_hhmm"`
	MaxPatientsPerSlot int    `json:"maxPatientsPerSlot" validate:"required,gte=1,lte=50"`
	EffectiveFrom      string `json:"effectiveFrom" validate:"required,date_yyyymmdd"`
	EffectiveTo        string `json:"effectiveTo" validate:"omitempty,date_yyyymmdd"`
}

type CreateLeave struct {
	ProfessionalID string `json:"professionalId" validate:"required"`
	LeaveDate      string `json:"leaveDate" validate:"required,date_yyyymmdd"`
	StartTime      string `json:"startTime" validate:"omitempty,time_hhmm"`
	EndTime        string `json:"endTime" validate:"omitempty,time_hhmm"`
	Reason         string `json:"reason" validate:"omitempty,max=300"`
}
