// Package apperr is the error catalog shared by valuefmt packages.
//
// Every failure raised by the library carries a *Kind with a stable
// name and numeric code, so callers can branch with errors.Is:
//
//	if errors.Is(err, apperr.ErrMerge) { ... }
//
// Codes of six digits or fewer are reserved for this catalog.
package apperr

// Kind classifies an error. Kinds are compared by identity.
type Kind struct {
	Name string
	Code string
	Msg  string
}

func (k *Kind) Error() string {
	return k.Name + ": " + k.Msg
}

var (
	ErrEnvVar      = &Kind{Name: "ERR_ENV_VAR", Code: "100001", Msg: "reading environment variable failed"}
	ErrIO          = &Kind{Name: "ERR_IO", Code: "100002", Msg: "i/o failed"}
	ErrConvert     = &Kind{Name: "ERR_CONVERT", Code: "100003", Msg: "data conversion failed"}
	ErrCast        = &Kind{Name: "ERR_CAST", Code: "100004", Msg: "data cast failed"}
	ErrSerialize   = &Kind{Name: "ERR_SERIALIZE", Code: "100005", Msg: "serializing data failed"}
	ErrDeserialize = &Kind{Name: "ERR_DESERIALIZE", Code: "100006", Msg: "deserializing data failed"}
	ErrData        = &Kind{Name: "ERR_DATA", Code: "100007", Msg: "data processing failed"}
	ErrParse       = &Kind{Name: "ERR_PARSE", Code: "100008", Msg: "parsing data failed"}
	ErrMerge       = &Kind{Name: "ERR_MERGE", Code: "100009", Msg: "merging data failed"}
	ErrFormat      = &Kind{Name: "ERR_FORMAT", Code: "100010", Msg: "formatting data failed"}
	ErrArgument    = &Kind{Name: "ERR_ARGUMENT", Code: "100011", Msg: "invalid argument"}
	ErrValidation  = &Kind{Name: "ERR_VALIDATION", Code: "100012", Msg: "validation failed"}
	ErrInternal    = &Kind{Name: "ERR_INTERNAL", Code: "999999", Msg: "internal error"}
)

func Kinds() []*Kind {
	return []*Kind{
		ErrEnvVar,
		ErrIO,
		ErrConvert,
		ErrCast,
		ErrSerialize,
		ErrDeserialize,
		ErrData,
		ErrParse,
		ErrMerge,
		ErrFormat,
		ErrArgument,
		ErrValidation,
		ErrInternal,
	}
}

// Lookup returns the kind with the given code, or nil.
func Lookup(code string) *Kind {
	for _, k := range Kinds() {
		if k.Code == code {
			return k
		}
	}
	return nil
}
