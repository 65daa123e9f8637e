package config

type (
	InternalConfig struct {
		App     App
		Booking Booking
		OTP     OTP
		JWT     JWT
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		SuperadminAPIKey          string
		RabbitMQSMSQueue          string
		RabbitMQMailerQueue       string
		MailerEmailSender         string
		ClaimDocumentURLExpiryMin int
	}
	Booking struct {
		CutoffMinutes     int
		SlotLengthMinutes int
		LockExpirySeconds int
		DirectoryCacheTTL int
		DefaultPageSize   int
	}
	OTP struct {
		Length               int
		ExpiryTimeInMinute   int
		MaxRequestsPerWindow int
		WindowDurationSec    int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
