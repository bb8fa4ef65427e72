package services

// Services defined in this package:
// - AuthService: Handles authentication and token rotation
// - ClaimService: Handles the claim lifecycle, the editor boundary and bulk transitions
// - StudentService: Handles operations related to students
// - PractitionerService: Handles operations related to practitioners
// - ServiceCodeService: Handles the billing catalog
// - DistrictService: Handles operations related to school districts
// - UserService: Handles portal account administration
