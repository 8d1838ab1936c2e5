// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthLinkSent      = "auth.link_sent"
	KeyAuthLinkInvalid   = "auth.link_invalid"
	KeyAuthSignedOut     = "auth.signed_out"
	KeyAdminAccessDenied = "auth.access_denied"

	// Partners
	KeyPartnerCreated   = "partner.created"
	KeyPartnerUpdated   = "partner.updated"
	KeyPartnerNotFound  = "partner.not_found"
	KeyPartnerDuplicate = "partner.duplicate"

	// Customers
	KeyCustomerCreated       = "customer.created"
	KeyCustomerUpdated       = "customer.updated"
	KeyCustomerNotFound      = "customer.not_found"
	KeyCustomerDuplicate     = "customer.duplicate"
	KeyCustomerUnknownParent = "customer.unknown_partner"

	// Applications
	KeyApplicationReceived        = "application.received"
	KeyApplicationUpdated         = "application.updated"
	KeyApplicationNotFound        = "application.not_found"
	KeyApplicationDuplicateEmail  = "application.duplicate_email"
	KeyApplicationApproved        = "application.approved"
	KeyApplicationAlreadyApproved = "application.already_approved"
	KeyApplicationNotApproved     = "application.not_approved"
	KeyApplicationResolved        = "application.resolved"

	// Licenses
	KeyLicenseCreated      = "license.created"
	KeyLicenseUpdated      = "license.updated"
	KeyLicenseNotFound     = "license.not_found"
	KeyLicenseDuplicate    = "license.duplicate"
	KeyLicenseAssigned     = "license.assigned"
	KeyLicenseNoneAssigned = "license.none_assigned"

	// Users
	KeyUserCreated   = "user.created"
	KeyUserUpdated   = "user.updated"
	KeyUserNotFound  = "user.not_found"
	KeyUserDuplicate = "user.duplicate"

	// Courses
	KeyCourseCreated  = "course.created"
	KeyCourseUpdated  = "course.updated"
	KeyCourseNotFound = "course.not_found"

	// Upstream platforms
	KeyUpstreamAuthFailed = "upstream.auth_failed"
	KeyUpstreamTimeout    = "upstream.timeout"
	KeyUpstreamNotFound   = "upstream.not_found"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File upload
	KeyFileUploadFailed = "file.upload_failed"
	KeyFileTooLarge     = "file.too_large"
	KeyFileInvalidType  = "file.invalid_type"
)
