package utils

import (
	"regexp"

	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	regexNepalMobile = regexp.MustCompile(constvars.RegexNepalMobileNumber)
	regexDate        = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	regexTimeHHMM    = regexp.MustCompile(constvars.RegexTimeHHMM)
	regexTimeSlot    = regexp.MustCompile(constvars.RegexTimeSlot)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("nepali_phone", validateNepaliPhone)
	validate.RegisterValidation("date_yyyymmdd", validateDateYYYYMMDD)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
	validate.RegisterValidation("time_slot", validateTimeSlot)
}

func validateNepaliPhone(fl validator.FieldLevel) bool {
	return regexNepalMobile.MatchString(fl.Field().String())
}

func validateDateYYYYMMDD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !regexDate.MatchString(value) {
		return false
	}
	_, err := ParseDateYYYYMMDD(value)
	return err == nil
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	return regexTimeHHMM.MatchString(fl.Field().String())
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !regexTimeSlot.MatchString(value) {
		return false
	}
	start, end, err := ParseTimeSlot(value)
	if err != nil {
		return false
	}
	return TimeToMinutes(end) > TimeToMinutes(start)
}

func ValidateStruct(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
