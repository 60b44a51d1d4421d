package repo

import "time"

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Collections struct {
		Interviewers string `yaml:"interviewers"`
		Slots        string `yaml:"slots"`
	} `yaml:"collections"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	// Transactions requires a replica set deployment. When disabled,
	// availability replacement and slot insertion are two separate writes.
	Transactions bool `yaml:"transactions"`
}
