package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error returned when a query
// for a single entity finds no rows. The service layer translates it into a
// domain-level error, keeping business logic decoupled from the database
// driver's own error values (e.g. sql.ErrNoRows).
var ErrNotFound = errors.New("repository: not found")
