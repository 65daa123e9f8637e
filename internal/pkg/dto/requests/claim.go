package requests

type SubmitClaim struct {
	CouncilNumber string `json:"councilNumber" validate:"required,max=50"`
	DocumentKey   string `json:"documentKey" validate:"required,max=300"`
}

type DecideClaim struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
}
