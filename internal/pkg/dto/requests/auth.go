package requests

type RequestOTP struct {
	Phone string `json:"phone" validate:"required,nepali_phone"`
}

type VerifyOTP struct {
	Phone string `json:"phone" validate:"required,nepali_phone"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type StaffLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
