package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ebsuite/claimsportal/internal/app/controllers"
	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	claimController *controllers.ClaimController,
	studentController *controllers.StudentController,
	practitionerController *controllers.PractitionerController,
	serviceCodeController *controllers.ServiceCodeController,
	districtController *controllers.DistrictController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Everything else requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/users/profile", userController.UpdateProfile)

		// Claims dashboard and editor. Every portal role can read; editing
		// is for billing staff and administrators; bulk transitions are the
		// billing administrator's call.
		claims := authenticated.Group("/claims")
		{
			claims.GET("", claimController.ListClaims)
			claims.GET("/remittance-summary", claimController.RemittanceSummary)
			claims.GET("/:id", claimController.GetClaim)

			claimsEditProtected := claims.Group("")
			claimsEditProtected.Use(authMiddleware.RoleRequired(
				models.RoleAdministrator, models.RoleBillingAdministrator))
			{
				claimsEditProtected.POST("", claimController.CreateClaim)
				claimsEditProtected.PUT("/:id", claimController.UpdateClaim)
				claimsEditProtected.DELETE("/:id", claimController.DeleteClaim)
				claimsEditProtected.POST("/transitions", claimController.ApplyTransition)
			}
		}

		// Student roster
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(
				models.RoleAdministrator, models.RoleBillingAdministrator, models.RoleSupervisor))
			{
				studentsAdminProtected.POST("", studentController.CreateStudent)
				studentsAdminProtected.PUT("/:id", studentController.UpdateStudent)
				studentsAdminProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Provider roster
		practitioners := authenticated.Group("/practitioners")
		{
			practitioners.GET("", practitionerController.ListPractitioners)
			practitioners.GET("/:id", practitionerController.GetPractitioner)

			practitionersAdminProtected := practitioners.Group("")
			practitionersAdminProtected.Use(authMiddleware.RoleRequired(
				models.RoleAdministrator, models.RoleSupervisor))
			{
				practitionersAdminProtected.POST("", practitionerController.CreatePractitioner)
				practitionersAdminProtected.PUT("/:id", practitionerController.UpdatePractitioner)
				practitionersAdminProtected.DELETE("/:id", practitionerController.DeletePractitioner)
			}
		}

		// Billing catalog
		serviceCodes := authenticated.Group("/service-codes")
		{
			serviceCodes.GET("", serviceCodeController.ListServiceCodes)
			serviceCodes.GET("/:id", serviceCodeController.GetServiceCode)

			serviceCodesAdminProtected := serviceCodes.Group("")
			serviceCodesAdminProtected.Use(authMiddleware.RoleRequired(
				models.RoleAdministrator, models.RoleBillingAdministrator))
			{
				serviceCodesAdminProtected.POST("", serviceCodeController.CreateServiceCode)
				serviceCodesAdminProtected.PUT("/:id", serviceCodeController.UpdateServiceCode)
				serviceCodesAdminProtected.DELETE("/:id", serviceCodeController.DeleteServiceCode)
			}
		}

		// District lookups
		districts := authenticated.Group("/districts")
		{
			districts.GET("", districtController.ListDistricts)
			districts.GET("/:id", districtController.GetDistrict)

			districtsAdminProtected := districts.Group("")
			districtsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
			{
				districtsAdminProtected.POST("", districtController.CreateDistrict)
				districtsAdminProtected.PUT("/:id", districtController.UpdateDistrict)
				districtsAdminProtected.DELETE("/:id", districtController.DeleteDistrict)
			}
		}

		// Account administration
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdministrator))
		{
			users.GET("", userController.ListUsers)
			users.GET("/:id", userController.GetUser)
			users.POST("", userController.CreateUser)
			users.PATCH("/:id/active", userController.SetUserActive)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}
}
