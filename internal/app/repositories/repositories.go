// Package repositories contains the data access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories acts as a container for all repositories
type Repositories struct {
	Users         *UserRepository
	Tokens        *TokenRepository
	Claims        *ClaimRepository
	Students      *StudentRepository
	Practitioners *PractitionerRepository
	ServiceCodes  *ServiceCodeRepository
	Districts     *DistrictRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(dbPool),
		Tokens:        NewTokenRepository(dbPool),
		Claims:        NewClaimRepository(dbPool),
		Students:      NewStudentRepository(dbPool),
		Practitioners: NewPractitionerRepository(dbPool),
		ServiceCodes:  NewServiceCodeRepository(dbPool),
		Districts:     NewDistrictRepository(dbPool),
	}
}
