package config

import (
	"fmt"
	"sort"
	"strings"
)

// Database holds the Postgres connection settings.
type Database struct {
	Host             string
	Port             int
	Username         string
	Password         string `json:"-"` // sensitive
	Database         string
	AdditionalParams map[string]string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  string
}

// ConnectionString generates a connection string to be passed to
// sql.Open(), assembled from all the database settings.
func (c Database) ConnectionString() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s", c.Host, c.Port, c.Username, c.Password, c.Database))

	if len(c.AdditionalParams) > 0 {
		params := make([]string, 0, len(c.AdditionalParams))
		for param, value := range c.AdditionalParams {
			params = append(params, fmt.Sprintf("%s=%s", param, value))
		}
		sort.Strings(params)
		b.WriteString(" ")
		b.WriteString(strings.Join(params, " "))
	}

	return b.String()
}
