package generator

import "github.com/google/uuid"

// GeneratorService produces identifiers and random numbers.
type GeneratorService interface {
	NewGUID() uuid.UUID
	Randoms(count, upper int) []int
}
