// Package db ships the SQL schema migrations applied by goose.
package db

import "embed"

// Migrations holds the goose migration files under "migrations/".
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations passed to goose.
const MigrationsDir = "migrations"
