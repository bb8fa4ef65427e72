package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/ebsuite/claimsportal/internal/app/models"
	appRepos "github.com/ebsuite/claimsportal/internal/app/repositories"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
)

// CreateDefaultData creates the default districts, service codes and the
// administrator account if they don't exist. Errors are collected so a partial
// failure does not block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	districtRepo := appRepos.NewDistrictRepository(dbPool)
	serviceCodeRepo := appRepos.NewServiceCodeRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (districts/service codes)...")
	var finalErr error

	districts := []*appModels.District{
		{Name: "Fruitvale Elementary", Code: "FRV"},
		{Name: "Lakeside Unified", Code: "LKU"},
		{Name: "Mesa Verde Joint Union", Code: "MVJ"},
	}
	for _, district := range districts {
		if err := districtRepo.Create(ctx, district); err != nil && !errors.Is(err, apperrors.ErrDistrictAlreadyExists) {
			lgr.Error().Err(err).Str("code", district.Code).Msg("Error creating default district")
			finalErr = errors.Join(finalErr, err)
		}
	}

	serviceCodes := []*appModels.ServiceCode{
		{Code: "H2019", Description: "Therapeutic behavioral services", UnitRate: rate(31.25), IsActive: true},
		{Code: "92507", Description: "Speech-language treatment, individual", UnitRate: rate(48.10), IsActive: true},
		{Code: "97530", Description: "Therapeutic activities", UnitRate: rate(42.75), IsActive: true},
		{Code: "T1027", Description: "Family training and counseling", UnitRate: rate(27.50), IsActive: true},
	}
	for _, sc := range serviceCodes {
		if err := serviceCodeRepo.Create(ctx, sc); err != nil && !errors.Is(err, apperrors.ErrServiceCodeAlreadyExists) {
			lgr.Error().Err(err).Str("code", sc.Code).Msg("Error creating default service code")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Default administrator account
	const adminEmail = "admin@claimsportal.app"
	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     adminEmail,
				Password:  string(hashedPassword),
				FirstName: "System",
				LastName:  "Administrator",
				RoleType:  appModels.RoleAdministrator,
				IsActive:  true,
			}
			if err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating default admin user")
				finalErr = errors.Join(finalErr, err)
			} else if err == nil {
				lgr.Info().Int64("userId", admin.ID).Msg("Default admin user created")
			}
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation completed with errors")
	} else {
		lgr.Info().Msg("Default data check/creation complete")
	}
	return finalErr
}

func rate(v float64) *float64 { return &v }
