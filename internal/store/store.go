// Package store is the typed persistence gateway. Every operation is a
// single datastore round trip unless noted, takes a context, and maps
// one-to-one onto a handler need. Handlers never touch gorm directly.
package store

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
