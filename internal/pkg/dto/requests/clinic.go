package requests

type RegisterClinic struct {
	Name          string `json:"name" validate:"required,min=2,max=200"`
	NameNe        string `json:"nameNe" validate:"omitempty,max=200"`
	Address       string `json:"address" validate:"required,max=300"`
	City          string `json:"city" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"required,nepali_phone"`
	Email         string `json:"email" validate:"required,email"`
	StaffFullName string `json:"staffFullName" validate:"required,min=2,max=120"`
	StaffPassword string `json:"staffPassword" validate:"required,min=8"`
}
