package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"
	CodeUnknownUnit      Code = "UNKNOWN_UNIT_ERROR"
	CodeBadSizeSpec      Code = "BAD_SIZE_SPEC_ERROR"
	CodeLogSinkError     Code = "LOG_SINK_ERROR"
	CodeTempFileError    Code = "TEMP_FILE_ERROR"
)

func (c Code) String() string {
	return string(c)
}
