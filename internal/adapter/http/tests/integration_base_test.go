//go:build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "taskboard/internal/adapter/db"
	"taskboard/internal/config"
)

// IntegrationSuiteBase targets a throwaway MySQL schema. The connection
// settings come from the usual MYSQL_* variables; the schema name gets a
// _test suffix so a development database is never touched.
type IntegrationSuiteBase struct {
	suite.Suite

	admin  *sqlx.DB
	DB     *sqlx.DB
	schema string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	cfg := config.Default()
	cfg.DbDriver = config.DriverMySQL
	cfg.DbHost = envOr("MYSQL_HOST", "127.0.0.1")
	cfg.DbPort = envOr("MYSQL_PORT", cfg.DbPort)
	cfg.DbUser = envOr("MYSQL_ROOT_USER", "root")
	cfg.DbPassword = envOr("MYSQL_ROOT_PASSWORD", "root")
	cfg.DbParams = envOr("MYSQL_PARAMS", cfg.DbParams)
	cfg.DbName = ""

	admin, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		s.T().Skipf("mysql unavailable, skipping: %v", err)
	}
	s.admin = admin

	s.schema = envOr("MYSQL_TEST_DATABASE", envOr("MYSQL_DATABASE", "taskboard")+"_test")
	_, err = s.admin.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", s.schema))
	s.Require().NoError(err)

	cfg.DbName = s.schema
	s.DB, err = dbadapter.ConnectDB(cfg)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.admin == nil {
		return
	}
	if strings.HasSuffix(s.schema, "_test") {
		_, err := s.admin.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.schema))
		s.Require().NoError(err)
	}
	s.Require().NoError(s.admin.Close())
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, table := range []string{"tasks", "users"} {
		_, err := s.DB.Exec("DROP TABLE IF EXISTS " + table)
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB))
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
