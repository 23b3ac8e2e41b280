package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	VapidPublicKey  string
	VapidPrivateKey string
	VapidSubscriber string

	NotifyPoolSize   int
	RoleCacheTTL     string
	ReminderSchedule string
	ReminderAge      string
}
