package errors

// ErrorCode identifies an application error class on the wire
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1002
	ErrorCode_DEADLINE_EXCEEDED ErrorCode = 1005

	// Authentication
	ErrorCode_AUTH_MISSING_HEADER      ErrorCode = 2000
	ErrorCode_AUTH_INVALID_SESSION     ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002
	ErrorCode_AUTH_SIGNUP_FAILED       ErrorCode = 2003
	ErrorCode_AUTH_LOGOUT_FAILED       ErrorCode = 2004

	// Interview pipeline
	ErrorCode_TRANSCRIPT_UNAVAILABLE ErrorCode = 3000
	ErrorCode_PERSISTENCE_FAILED     ErrorCode = 3002
	ErrorCode_INTERVIEW_LIST_FAILED  ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                     "UNSPECIFIED",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_DEADLINE_EXCEEDED:               "DEADLINE_EXCEEDED",
	ErrorCode_AUTH_MISSING_HEADER:             "AUTH_MISSING_HEADER",
	ErrorCode_AUTH_INVALID_SESSION:            "AUTH_INVALID_SESSION",
	ErrorCode_AUTH_INVALID_CREDENTIALS:        "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_SIGNUP_FAILED:              "AUTH_SIGNUP_FAILED",
	ErrorCode_AUTH_LOGOUT_FAILED:              "AUTH_LOGOUT_FAILED",
	ErrorCode_TRANSCRIPT_UNAVAILABLE:          "TRANSCRIPT_UNAVAILABLE",
	ErrorCode_PERSISTENCE_FAILED:              "PERSISTENCE_FAILED",
	ErrorCode_INTERVIEW_LIST_FAILED:           "INTERVIEW_LIST_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
