package scheduling

type Config struct {
	// Timezone is the IANA name of the calendar used for quota week
	// boundaries (Monday 00:00). Empty means UTC.
	Timezone string `yaml:"timezone"`
}
