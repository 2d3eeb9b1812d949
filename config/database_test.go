package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectDB_UnreachableLeavesDBNil(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{"refused", "postgres://u:p@127.0.0.1:1/coffee_shop?sslmode=disable&connect_timeout=1"},
		{"unparsable", "postgres://u:p@127.0.0.1:notaport/coffee_shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AppConfig = &Config{DatabaseURL: tt.dsn}
			DB = nil
			t.Cleanup(func() { AppConfig, DB = nil, nil })

			assert.NotPanics(t, ConnectDB)
			assert.Nil(t, DB)
			assert.NotPanics(t, CloseDB)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "postgres", DBPassword: "pw", DBHost: "db", DBPort: "5432", DBName: "coffee_shop", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://postgres:pw@db:5432/coffee_shop?sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://other/db"
	assert.Equal(t, "postgres://other/db", cfg.DSN())
}
