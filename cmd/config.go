package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application together. Values come from the environment, optionally via a
// .env file; see getConfig in cmd/app for variable names and defaults.
type Config struct {
	HTTPPort string

	// DBDriver selects the order store backend: "sqlite" (the default, a
	// single file with zero setup) or "postgres".
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// LifecycleInterval is the pause between automatic status advancements.
	// Zero or negative falls back to the supervisor's default.
	LifecycleInterval time.Duration

	// KafkaHost is a comma-separated broker list. Empty disables event
	// publishing entirely.
	KafkaHost              string
	KafkaOrderChangedTopic string
}
