package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUsername      = "username"
	KeyUserRole      = "user_role"
	KeyFromProtected = "from_protected"
	KeyUserContext   = "USER_CONTEXT"

	// set after a successful access-code verification
	KeyPortalBusinessID = "portal_business_id"
	KeyPortalID         = "portal_id"
)
