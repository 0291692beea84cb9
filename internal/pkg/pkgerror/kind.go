package pkgerror

import "net/http"

// Kind identifies an entry of the predefined error catalog.
//
// Kind implements error so it can be used as an errors.Is target.
type Kind int

const (
	KindCustom Kind = iota // Caller-defined status and name.
	KindBadRequest
	KindUnauthorized
	KindPaymentRequired
	KindForbidden
	KindNotFound
	KindConflict
	KindGone
	KindLengthRequired
	KindPreconditionFailed
	KindUnsupportedMediaType
	KindRequestRangeNotSatisfiable
	KindExpectationFailed
	KindTeapot
	KindMisdirectedRequest
	KindUnprocessableEntity
	KindUpgradeRequired
	KindUnsupportedUpgrade
	KindInvalidSSLCertificate
	KindTooManyRequests
	KindRequestHeaderFieldsTooLarge
	KindUnavailableForLegalReasons
	KindInternalServerError
	KindGatewayTimeout
	KindUnavailable
	KindDependencyTimeout
	KindVariantAlsoNegotiates
	KindInsufficientStorage
	KindLoopDetected
)

// Kinds lists every predefined kind in status order. KindCustom is not part of it.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(KindLoopDetected))
	for k := KindBadRequest; k <= KindLoopDetected; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

type kindInfo struct {
	status  int
	name    string
	message string
}

func (k Kind) info() kindInfo {
	switch k {
	case KindBadRequest:
		return kindInfo{http.StatusBadRequest, "BadRequest", "Bad request"}
	case KindUnauthorized:
		return kindInfo{http.StatusUnauthorized, "Unauthorized", "Invalid authentication credentials"}
	case KindPaymentRequired:
		return kindInfo{http.StatusPaymentRequired, "PaymentRequired", "Payment required to proceed"}
	case KindForbidden:
		return kindInfo{http.StatusForbidden, "Forbidden", "Access denied due to insufficient permissions"}
	case KindNotFound:
		return kindInfo{http.StatusNotFound, "NotFound", "Requested resource not found"}
	case KindConflict:
		return kindInfo{http.StatusConflict, "Conflict", "Resource conflict occurred"}
	case KindGone:
		return kindInfo{http.StatusGone, "Gone", "Requested resource is no longer available"}
	case KindLengthRequired:
		return kindInfo{http.StatusLengthRequired, "LengthRequired", "Content length is required"}
	case KindPreconditionFailed:
		return kindInfo{http.StatusPreconditionFailed, "PreconditionFailed", "Precondition for the request failed"}
	case KindUnsupportedMediaType:
		return kindInfo{http.StatusUnsupportedMediaType, "UnsupportedMediaType", "Unsupported media type"}
	case KindRequestRangeNotSatisfiable:
		return kindInfo{http.StatusRequestedRangeNotSatisfiable, "RequestRangeNotSatisfiable", "Request range is not satisfiable"}
	case KindExpectationFailed:
		return kindInfo{http.StatusExpectationFailed, "ExpectationFailed", "Expectation failed"}
	case KindTeapot:
		return kindInfo{http.StatusTeapot, "Teapot", "I'm a teapot"}
	case KindMisdirectedRequest:
		return kindInfo{http.StatusMisdirectedRequest, "MisdirectedRequest", "The request was directed to an incorrect server"}
	case KindUnprocessableEntity:
		return kindInfo{http.StatusUnprocessableEntity, "UnprocessableEntity", "Request data is invalid or cannot be processed"}
	case KindUpgradeRequired:
		return kindInfo{http.StatusUpgradeRequired, "UpgradeRequired", "The server requires the client to upgrade to a newer version"}
	case KindUnsupportedUpgrade:
		// 427 is unassigned by IANA; net/http has no constant for it.
		return kindInfo{427, "UnsupportedUpgrade", "The server does not support the upgrade requested by the client"}
	case KindInvalidSSLCertificate:
		// Shares 428 with Precondition Required.
		return kindInfo{428, "InvalidSSLCertificate", "The client's SSL certificate is invalid"}
	case KindTooManyRequests:
		return kindInfo{http.StatusTooManyRequests, "TooManyRequests", "Request limit exceeded"}
	case KindRequestHeaderFieldsTooLarge:
		return kindInfo{http.StatusRequestHeaderFieldsTooLarge, "RequestHeaderFieldsTooLarge", "The request headers are too large"}
	case KindUnavailableForLegalReasons:
		return kindInfo{http.StatusUnavailableForLegalReasons, "UnavailableForLegalReasons", "The resource is unavailable due to legal reasons"}
	case KindInternalServerError:
		return kindInfo{http.StatusInternalServerError, "InternalServerError", "Internal server error"}
	case KindGatewayTimeout:
		return kindInfo{http.StatusBadGateway, "GatewayTimeout", "Timeout occurred while communicating with upstream server"}
	case KindUnavailable:
		return kindInfo{http.StatusServiceUnavailable, "Unavailable", "The server is currently unavailable"}
	case KindDependencyTimeout:
		return kindInfo{http.StatusGatewayTimeout, "DependencyTimeout", "Timeout occurred while waiting for external dependency"}
	case KindVariantAlsoNegotiates:
		return kindInfo{
			http.StatusVariantAlsoNegotiates,
			"VariantAlsoNegotiates",
			"The server is capable of serving the request, but the client has indicated an alternate preference",
		}
	case KindInsufficientStorage:
		return kindInfo{
			http.StatusInsufficientStorage,
			"InsufficientStorage",
			"The server does not have sufficient storage available to fulfill the request",
		}
	case KindLoopDetected:
		return kindInfo{http.StatusLoopDetected, "LoopDetected", "An infinite loop has been detected in the request"}
	case KindCustom:
		return kindInfo{http.StatusInternalServerError, "Error", "Unknown error"}
	default:
		return kindInfo{http.StatusInternalServerError, "Error", "Unknown error"}
	}
}

// Status returns the HTTP status bound to the kind.
func (k Kind) Status() int {
	return k.info().status
}

// Name returns the display name bound to the kind (for example "NotFound").
func (k Kind) Name() string {
	return k.info().name
}

// DefaultMessage returns the message used when a constructor receives an empty one.
func (k Kind) DefaultMessage() string {
	return k.info().message
}

func (k Kind) String() string {
	return k.Name()
}

// Error implements the error interface so a Kind can be passed to errors.Is.
func (k Kind) Error() string {
	return k.Name()
}
