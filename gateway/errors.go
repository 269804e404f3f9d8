package gateway

import (
	"github.com/pkg/errors"

	"github.com/tiglabs/graphson"
)

// gateway global error definitions
var (
	ErrSuc           = errors.New("success")
	ErrInternalError = errors.New("internal error")
	ErrSysBusy       = errors.New("system busy")
	ErrParamError    = errors.New("param error")
	ErrInvalidCfg    = errors.New("config error")

	ErrUnknownVersion  = errors.New("unknown format version")
	ErrMalformedDoc    = errors.New("malformed document")
	ErrUnknownTag      = errors.New("unknown type tag")
	ErrUnsupportedType = errors.New("unsupported type")
)

// http response error code and error message definitions
const (
	ERRCODE_SUCCESS = iota
	ERRCODE_INTERNAL_ERROR
	ERRCODE_SYSBUSY
	ERRCODE_PARAM_ERROR
	ERRCODE_INVALID_CFG

	ERRCODE_UNKNOWN_VERSION
	ERRCODE_MALFORMED_DOC
	ERRCODE_UNKNOWN_TAG
	ERRCODE_UNSUPPORTED_TYPE
)

var Err2CodeMap = map[error]int32{
	ErrSuc:           ERRCODE_SUCCESS,
	ErrInternalError: ERRCODE_INTERNAL_ERROR,
	ErrSysBusy:       ERRCODE_SYSBUSY,
	ErrParamError:    ERRCODE_PARAM_ERROR,
	ErrInvalidCfg:    ERRCODE_INVALID_CFG,

	ErrUnknownVersion:  ERRCODE_UNKNOWN_VERSION,
	ErrMalformedDoc:    ERRCODE_MALFORMED_DOC,
	ErrUnknownTag:      ERRCODE_UNKNOWN_TAG,
	ErrUnsupportedType: ERRCODE_UNSUPPORTED_TYPE,
}

// classifyCodecErr folds a codec failure onto the reply sentinels so
// callers get a stable code plus the detailed message.
func classifyCodecErr(err error) error {
	var (
		unknownTag  *graphson.UnknownTagError
		malformed   *graphson.MalformedEnvelopeError
		unsupported *graphson.UnsupportedTypeError
		badConfig   *graphson.ConfigurationError
	)
	switch {
	case errors.As(err, &unknownTag):
		return ErrUnknownTag
	case errors.As(err, &unsupported):
		return ErrUnsupportedType
	case errors.As(err, &malformed):
		return ErrMalformedDoc
	case errors.As(err, &badConfig):
		return ErrInvalidCfg
	default:
		return ErrMalformedDoc
	}
}
