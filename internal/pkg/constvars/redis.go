package constvars

const (
	RedisKeySessionFormat     = "session:%s"
	RedisKeyOTPFormat         = "otp:%s"
	RedisKeyBookingLockFormat = "booking:%s:%s:%s:%s"
	RedisKeyDirectoryCache    = "directory:professionals:%s"
)
