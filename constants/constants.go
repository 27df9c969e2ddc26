package constants

// Booking types
const (
	BookTypeNormal  = "normal"
	BookTypeGroup   = "group"
	BookTypeTeacher = "teacher"
)

var BookTypes = []string{BookTypeNormal, BookTypeGroup, BookTypeTeacher}

// Ticket statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var TicketStatuses = []string{StatusPending, StatusApproved, StatusRejected}

// Setting keys
const (
	SettingRules         = "rules"
	SettingPrivacy       = "privacy"
	SettingAdminPassword = "admin_password"
)

// Auth roles carried in token claims
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
)

// Teacher login throttling
const (
	TeacherMaxAttempts = 5
	TeacherLockSeconds = 300
)

// Response messages
const (
	ERROR_INTERNAL_ERROR    = "INTERNAL_ERROR"
	ERROR_PARSE_DATA        = "INVALID_INPUT"
	ERROR_PARSE_LOCALS      = "PARSE_DATA_TO_LOCALS_FAIL"
	INVALID_BOOKING_TYPE    = "INVALID_BOOKING_TYPE"
	INVALID_STATUS          = "INVALID_STATUS"
	INVALID_DATE            = "DATE_NOT_IN_SCHEDULE"
	INVALID_PASSWORD        = "INVALID_PASSWORD"
	INVALID_PASSCODE        = "INVALID_PASSCODE"
	MISSING_STUDENT_ID      = "MISSING_STUDENT_ID"
	MISSING_STUDENT_NAME    = "MISSING_STUDENT_NAME"
	MISSING_GROUP_FIELDS    = "GROUP_NAME_AND_TWO_MEMBERS_REQUIRED"
	MISSING_TEACHER_NAME    = "MISSING_TEACHER_NAME"
	MISSING_TITLE           = "MISSING_TITLE"
	MISSING_SCHEDULE_FIELDS = "DATE_TIME_HALL_REQUIRED"
	TICKET_NOT_FOUND        = "TICKET_NOT_FOUND"
	MOVIE_NOT_FOUND         = "MOVIE_NOT_FOUND"
	SCHEDULE_NOT_FOUND      = "SCHEDULE_NOT_FOUND"
	NOT_ADMIN               = "ADMIN_LOGIN_REQUIRED"
	NOT_TEACHER             = "TEACHER_LOGIN_REQUIRED"
	CONSENT_REQUIRED        = "CONSENT_REQUIRED"
	TEACHER_LOCKED          = "TOO_MANY_ATTEMPTS"
	PASSWORD_TOO_SHORT      = "NEW_PASSWORD_MIN_8_CHARS"
	UNSUPPORTED_FILE_TYPE   = "UNSUPPORTED_FILE_TYPE"
)
