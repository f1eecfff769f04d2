//go:build !integration

package tests

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "taskboard/internal/adapter/db"
)

// IntegrationSuiteBase runs the suites against an in-memory SQLite
// database. Build with -tags integration to target MySQL instead.
type IntegrationSuiteBase struct {
	suite.Suite

	DB *sqlx.DB
}

func (s *IntegrationSuiteBase) SetupSuite() {
	db, err := dbadapter.ConnectSQLite(":memory:")
	s.Require().NoError(err)
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, statement := range []string{"DROP TABLE IF EXISTS tasks", "DROP TABLE IF EXISTS users"} {
		_, err := s.DB.Exec(statement)
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB))
}
