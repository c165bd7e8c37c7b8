package entry

import (
	"fmt"
	"log"

	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/go-sql-driver/mysql"
)

var (
	_ entry.Store = (*Store)(nil)
	_ entry.Store = (*InMemoryStore)(nil)
)

// MySQLConfig builds the MySQL connection settings from the MYSQL_* keys
func MySQLConfig(cfg *utils.Config) *mysql.Config {
	dbConfig := mysql.NewConfig()
	dbConfig.User = cfg.Get("MYSQL_USER")
	dbConfig.Passwd = cfg.Get("MYSQL_ROOT_PASSWORD")
	dbConfig.Net = "tcp"
	dbConfig.Addr = fmt.Sprintf("%s:%s", cfg.GetWithDefault("MYSQL_HOST", "localhost"), cfg.GetWithDefault("MYSQL_PORT", "3306"))
	dbConfig.DBName = cfg.Get("MYSQL_DATABASE")
	dbConfig.ParseTime = true
	return dbConfig
}

// Open selects a record store from the configuration: MySQL when
// MYSQL_DATABASE is set, SQLite when SQLITE_PATH is set, otherwise memory
func Open(cfg *utils.Config) (entry.Store, error) {
	switch {
	case cfg.Has("MYSQL_DATABASE"):
		log.Printf("[STORE]: Using MySQL database %s\n", cfg.Get("MYSQL_DATABASE"))
		return NewMySQLStore(MySQLConfig(cfg).FormatDSN())

	case cfg.Has("SQLITE_PATH"):
		log.Printf("[STORE]: Using SQLite database %s\n", cfg.Get("SQLITE_PATH"))
		return NewSQLiteStore(cfg.Get("SQLITE_PATH"))

	default:
		log.Println("[STORE]: Warning, no database configured, entries are kept in memory")
		return NewInMemoryStore(), nil
	}
}
