// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or
// update data, abstracting SQL logic away from the service layer.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Repositories translate pgx.ErrNoRows into this sentinel so callers
// never depend on driver types.
var ErrNotFound = errors.New("record not found")
