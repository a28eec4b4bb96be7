package contract

type EntryErrorCode string

const (
	EntryErrInvalidDate  EntryErrorCode = "INVALID_DATE"
	EntryErrInvalidMood  EntryErrorCode = "INVALID_MOOD"
	EntryErrInvalidValue EntryErrorCode = "INVALID_VALUE"
	EntryErrNotFound     EntryErrorCode = "NOT_FOUND"
)

type EntryError struct {
	Code    EntryErrorCode
	Message string
}

func (e *EntryError) Error() string {
	return string(e.Code) + ": " + e.Message
}
