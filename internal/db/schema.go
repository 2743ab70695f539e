package db

// SchemaSQL is the complete schema for fresh installs.
//
// All local state lives in one key-value table: queue categories
// ("visits", "monitors") hold a JSON array of pending records each, the
// remaining keys hold single JSON documents (cached user profile, school
// directory, last visit, in-progress session draft). Every write replaces
// a whole value atomically, so a failed write can never leave a partially
// updated blob behind.
//
// Tests load this same schema via GetSchemaSQL(); do not hardcode CREATE
// TABLE statements in test files.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for tests and init.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates the schema on the shared connection.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}
	_, err = database.Exec(SchemaSQL)
	return err
}
