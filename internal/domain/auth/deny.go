package auth

// DenyReason names the step at which a login attempt failed. Reasons are
// surfaced to the browser as the error query parameter on the login page.
type DenyReason string

const (
	DenyNone           DenyReason = ""
	DenyOAuthDenied    DenyReason = "oauth_denied"
	DenyNoCode         DenyReason = "no_code"
	DenyTokenFailed    DenyReason = "token_failed"
	DenyUserFailed     DenyReason = "user_failed"
	DenyConfigError    DenyReason = "config_error"
	DenyNotMember      DenyReason = "not_member"
	DenyCallbackFailed DenyReason = "callback_failed"
)
