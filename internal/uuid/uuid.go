// Package uuid hides ID generation behind an interface so import run IDs
// can be fixed in tests.
package uuid

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_uuid.go -package=mockuuid -source=uuid.go

// Generator produces unique string IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator generates random UUIDs using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
