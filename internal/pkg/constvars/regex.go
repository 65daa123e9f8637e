package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM     = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexTimeSlot     = `^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`
	// RegexNepalMobileNumber matches Nepali mobile numbers: 10 digits with a
	// 97 or 98 prefix, no country code.
	RegexNepalMobileNumber = `^9[78]\d{8}$`
)
