package internal

// Config is shared by the server and the CLI. Every binary loads it from
// the environment, optionally seeded by a .env file.
type Config struct {
	Host     string `env:"HOST,default=localhost"`
	Port     int    `env:"PORT,default=3000"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	// Storage selects the backend: memory, file, badger or mysql.
	Storage        string `env:"STORAGE,default=memory"`
	DataDir        string `env:"DATA_DIR,default=./data"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/badger"`

	// MySQLDSN must carry parseTime=true so DATETIME columns scan into
	// time.Time, e.g. "root:password@tcp(localhost:3306)/crafty?parseTime=true".
	MySQLDSN string `env:"MYSQL_DSN"`
}
