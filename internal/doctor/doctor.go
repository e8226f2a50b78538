// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

// Package doctor runs deployment preflight probes against a loaded
// settings document: database connectivity, credential hygiene, and
// embedding model sanity. It reports findings instead of failing fast so
// operators see every problem in one pass.
package doctor

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver

	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

// Status classifies the outcome of a single probe.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarn    Status = "warn"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Check is the outcome of one probe.
type Check struct {
	Name   string
	Status Status
	Detail string
	Err    error
}

// Report is the ordered list of probe outcomes for one run.
type Report []Check

// Failed reports whether any probe failed outright. Warnings do not
// count as failures.
func (r Report) Failed() bool {
	for _, c := range r {
		if c.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Doctor runs the probes. The zero value is not usable; construct with
// New.
type Doctor struct {
	openDB  func(dsn string) (*sql.DB, error)
	timeout time.Duration
	log     *logger.Logger
}

// Option configures a Doctor.
type Option func(*Doctor)

// WithOpenDB replaces the database opener. Used by tests to substitute a
// mock connection.
func WithOpenDB(open func(dsn string) (*sql.DB, error)) Option {
	return func(d *Doctor) { d.openDB = open }
}

// WithTimeout caps how long the database probe waits for a ping.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Doctor) { d.timeout = timeout }
}

// New builds a Doctor that opens postgres connections through the pgx
// stdlib driver and waits at most five seconds per probe.
func New(log *logger.Logger, opts ...Option) *Doctor {
	d := &Doctor{
		openDB: func(dsn string) (*sql.DB, error) {
			return sql.Open("pgx", dsn)
		},
		timeout: 5 * time.Second,
		log:     log,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run executes every probe against the document and returns the report.
// dsn is the postgres connection string for the connectivity probe; it
// lives outside the document because credentials never belong in the
// settings file.
func (d *Doctor) Run(ctx context.Context, s *settings.Settings, dsn string) Report {
	report := Report{
		d.checkDatabase(ctx, s, dsn),
		d.checkAdminCredentials(s),
		d.checkEmbeddingModel(s),
	}

	for _, c := range report {
		ev := d.log.Info()
		if c.Status == StatusFailed {
			ev = d.log.Error().Err(c.Err)
		}
		ev.Str("check", c.Name).Str("status", string(c.Status)).Msg(c.Detail)
	}

	return report
}

func (d *Doctor) checkDatabase(ctx context.Context, s *settings.Settings, dsn string) Check {
	check := Check{Name: "database"}

	if s.Database.Provider != settings.DatabaseProviderPostgres {
		check.Status = StatusSkipped
		check.Detail = fmt.Sprintf("provider %q is not probed", s.Database.Provider)
		return check
	}
	if dsn == "" {
		check.Status = StatusSkipped
		check.Detail = "no connection string provided"
		return check
	}

	db, err := d.openDB(dsn)
	if err != nil {
		check.Status = StatusFailed
		check.Detail = "error opening database"
		check.Err = err
		return check
	}
	defer func() { _ = db.Close() }()

	pingCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		check.Status = StatusFailed
		check.Detail = "database unreachable"
		check.Err = err
		return check
	}

	check.Status = StatusOK
	check.Detail = "database reachable"
	return check
}

func (d *Doctor) checkAdminCredentials(s *settings.Settings) Check {
	check := Check{Name: "admin-credentials"}

	if s.Auth.DefaultAdminPassword == settings.Default().Auth.DefaultAdminPassword {
		check.Status = StatusWarn
		check.Detail = "default admin password is unchanged; set auth.default_admin_password"
		return check
	}

	check.Status = StatusOK
	check.Detail = "admin password changed from the shipped default"
	return check
}

func (d *Doctor) checkEmbeddingModel(s *settings.Settings) Check {
	check := Check{Name: "embedding-model"}

	native, known := settings.KnownModelDimensions[s.Embedding.BaseModel]
	if !known {
		check.Status = StatusSkipped
		check.Detail = fmt.Sprintf("model %q has no registered native dimension", s.Embedding.BaseModel)
		return check
	}

	if s.Embedding.BaseDimension > native {
		check.Status = StatusFailed
		check.Detail = fmt.Sprintf("base_dimension %d exceeds the native dimension %d of %q",
			s.Embedding.BaseDimension, native, s.Embedding.BaseModel)
		return check
	}

	check.Status = StatusOK
	check.Detail = fmt.Sprintf("base_dimension %d fits %q (native %d)",
		s.Embedding.BaseDimension, s.Embedding.BaseModel, native)
	return check
}
