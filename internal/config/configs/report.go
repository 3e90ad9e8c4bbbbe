package configs

// Report configures the campaign dataset loaded at startup. When DataFile
// is empty the embedded sample campaign is used.
type Report struct {
	// DataFile is a path to a JSON file with the campaign summary and
	// daily breakdown.
	DataFile string `env:"DATA_FILE"`
}
