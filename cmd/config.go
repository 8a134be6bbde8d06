package cmd

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	DemoDataEnabled  bool
	DemoDataSeed     uint64
	DemoDataSchedule string
	TimeZone         string
	BcryptCost       int
}

// DSN returns the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}
