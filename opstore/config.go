package opstore

// Config of the local operation journal
type Config struct {
	// DBPath is the path of the sqlite database file
	DBPath string `mapstructure:"DBPath"`
	// RequireStorageContentCompatibility refuses to open a journal written for other chain IDs
	RequireStorageContentCompatibility bool `mapstructure:"RequireStorageContentCompatibility"`
}
