package config

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string `validate:"required"`
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string // "postgres" or "mysql"
}
