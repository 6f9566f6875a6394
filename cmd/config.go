package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DataDir is where the CSV data files live. Empty disables the
	// startup load and the periodic snapshots.
	DataDir string
}
