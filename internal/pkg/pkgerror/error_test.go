package pkgerror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCatalogDefaults(t *testing.T) {
	tests := []struct {
		ctor   func(string) error
		kind   Kind
		status int
		name   string
		msg    string
	}{
		{NewBadRequest, KindBadRequest, 400, "BadRequest", "Bad request"},
		{NewUnauthorized, KindUnauthorized, 401, "Unauthorized", "Invalid authentication credentials"},
		{NewPaymentRequired, KindPaymentRequired, 402, "PaymentRequired", "Payment required to proceed"},
		{NewForbidden, KindForbidden, 403, "Forbidden", "Access denied due to insufficient permissions"},
		{NewNotFound, KindNotFound, 404, "NotFound", "Requested resource not found"},
		{NewConflict, KindConflict, 409, "Conflict", "Resource conflict occurred"},
		{NewGone, KindGone, 410, "Gone", "Requested resource is no longer available"},
		{NewLengthRequired, KindLengthRequired, 411, "LengthRequired", "Content length is required"},
		{NewPreconditionFailed, KindPreconditionFailed, 412, "PreconditionFailed", "Precondition for the request failed"},
		{NewUnsupportedMediaType, KindUnsupportedMediaType, 415, "UnsupportedMediaType", "Unsupported media type"},
		{NewRequestRangeNotSatisfiable, KindRequestRangeNotSatisfiable, 416, "RequestRangeNotSatisfiable", "Request range is not satisfiable"},
		{NewExpectationFailed, KindExpectationFailed, 417, "ExpectationFailed", "Expectation failed"},
		{NewTeapot, KindTeapot, 418, "Teapot", "I'm a teapot"},
		{NewMisdirectedRequest, KindMisdirectedRequest, 421, "MisdirectedRequest", "The request was directed to an incorrect server"},
		{NewUnprocessableEntity, KindUnprocessableEntity, 422, "UnprocessableEntity", "Request data is invalid or cannot be processed"},
		{NewUpgradeRequired, KindUpgradeRequired, 426, "UpgradeRequired", "The server requires the client to upgrade to a newer version"},
		{NewUnsupportedUpgrade, KindUnsupportedUpgrade, 427, "UnsupportedUpgrade", "The server does not support the upgrade requested by the client"},
		{NewInvalidSSLCertificate, KindInvalidSSLCertificate, 428, "InvalidSSLCertificate", "The client's SSL certificate is invalid"},
		{NewTooManyRequests, KindTooManyRequests, 429, "TooManyRequests", "Request limit exceeded"},
		{NewRequestHeaderFieldsTooLarge, KindRequestHeaderFieldsTooLarge, 431, "RequestHeaderFieldsTooLarge", "The request headers are too large"},
		{NewUnavailableForLegalReasons, KindUnavailableForLegalReasons, 451, "UnavailableForLegalReasons", "The resource is unavailable due to legal reasons"},
		{NewInternalServerError, KindInternalServerError, 500, "InternalServerError", "Internal server error"},
		{NewGatewayTimeout, KindGatewayTimeout, 502, "GatewayTimeout", "Timeout occurred while communicating with upstream server"},
		{NewUnavailable, KindUnavailable, 503, "Unavailable", "The server is currently unavailable"},
		{NewDependencyTimeout, KindDependencyTimeout, 504, "DependencyTimeout", "Timeout occurred while waiting for external dependency"},
		{NewVariantAlsoNegotiates, KindVariantAlsoNegotiates, 506, "VariantAlsoNegotiates", "The server is capable of serving the request, but the client has indicated an alternate preference"},
		{NewInsufficientStorage, KindInsufficientStorage, 507, "InsufficientStorage", "The server does not have sufficient storage available to fulfill the request"},
		{NewLoopDetected, KindLoopDetected, 508, "LoopDetected", "An infinite loop has been detected in the request"},
	}

	if len(tests) != len(Kinds()) {
		t.Fatalf("expected %d catalog entries, got %d", len(Kinds()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr, ok := tt.ctor("").(*Error)
			if !ok {
				t.Fatalf("expected *Error")
			}
			if perr.Kind() != tt.kind {
				t.Fatalf("unexpected kind: %v", perr.Kind())
			}
			if perr.Status() != tt.status {
				t.Fatalf("unexpected status: %d", perr.Status())
			}
			if perr.Name() != tt.name {
				t.Fatalf("unexpected name: %q", perr.Name())
			}
			if perr.Msg() != tt.msg {
				t.Fatalf("unexpected default message: %q", perr.Msg())
			}

			custom := tt.ctor("custom message").(*Error)
			if custom.Msg() != "custom message" {
				t.Fatalf("expected message override, got %q", custom.Msg())
			}
			if custom.Status() != tt.status || custom.Name() != tt.name {
				t.Fatalf("override must not change status/name")
			}
		})
	}
}

func TestKindIdentity(t *testing.T) {
	err := NewNotFound("note 1 not found")

	if !errors.Is(err, KindNotFound) {
		t.Fatalf("expected errors.Is to match KindNotFound")
	}
	if errors.Is(err, KindConflict) {
		t.Fatalf("did not expect KindConflict to match")
	}

	wrapped := fmt.Errorf("usecase: %w", err)
	kind, ok := KindOf(wrapped)
	if !ok || kind != KindNotFound {
		t.Fatalf("expected KindNotFound through wrapping, got %v (%v)", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("did not expect a kind for a plain error")
	}
}

func TestCustomError(t *testing.T) {
	err := New("Custom error built by myself", http.StatusInternalServerError, "MyCustomError")
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Kind() != KindCustom {
		t.Fatalf("expected KindCustom, got %v", perr.Kind())
	}
	if perr.Name() != "MyCustomError" || perr.Status() != 500 {
		t.Fatalf("unexpected name/status: %q %d", perr.Name(), perr.Status())
	}
	if got := perr.Error(); got != "Custom error built by myself" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if errors.Is(err, KindInternalServerError) {
		t.Fatalf("custom error must not match a predefined kind")
	}
}

func TestCustomErrorEmptyMessage(t *testing.T) {
	perr, ok := New("", http.StatusTeapot, "Kettle").(*Error)
	if !ok {
		t.Fatalf("expected *Error")
	}
	if perr.Msg() != "Unknown error" || perr.Error() != "Unknown error" {
		t.Fatalf("expected default message in Msg and Error, got %q / %q", perr.Msg(), perr.Error())
	}
	if perr.Name() != "Kettle" || perr.Status() != http.StatusTeapot {
		t.Fatalf("unexpected name/status: %q %d", perr.Name(), perr.Status())
	}
}

func TestWrap(t *testing.T) {
	root := errors.New("connection reset")
	err := Wrap(root, KindDependencyTimeout)

	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped error")
	}
	perr := err.(*Error)
	if perr.Msg() != KindDependencyTimeout.DefaultMessage() {
		t.Fatalf("unexpected msg: %q", perr.Msg())
	}
	if got := perr.Error(); !strings.HasSuffix(got, ": connection reset") {
		t.Fatalf("expected cause in error string, got %q", got)
	}
	if !strings.Contains(perr.String(), "DependencyTimeout") {
		t.Fatalf("expected name in string: %q", perr.String())
	}
}

func TestOf(t *testing.T) {
	err := Of(KindTeapot, "").(*Error)
	if err.Msg() != "I'm a teapot" || err.Status() != http.StatusTeapot {
		t.Fatalf("unexpected teapot: %s", err.String())
	}
}

func TestUnknownKindFallback(t *testing.T) {
	k := Kind(999)
	if k.Status() != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", k.Status())
	}
	if k.String() != "Error" {
		t.Fatalf("unexpected name: %q", k.String())
	}
}

func TestRouteNotFoundError(t *testing.T) {
	generic := &RouteNotFoundError{Method: "GET", URL: "http://host/x", Message: RouteNotFoundSentinel}
	if !generic.Generic() {
		t.Fatalf("expected sentinel message to be generic")
	}
	if got := generic.Error(); got != "GET http://host/x: route not found" {
		t.Fatalf("unexpected error string: %q", got)
	}

	specific := &RouteNotFoundError{Method: "GET", URL: "http://host/x", Message: "gone fishing"}
	if specific.Generic() {
		t.Fatalf("did not expect specific message to be generic")
	}
	if specific.Error() != "gone fishing" {
		t.Fatalf("unexpected error string: %q", specific.Error())
	}
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{
		Status: http.StatusBadRequest,
		Fields: []FieldError{
			{Path: "title", Message: "title is required"},
			{Path: "body", Message: "body must be at most 4000 characters"},
		},
	}
	want := "validation failed: title: title is required; body: body must be at most 4000 characters"
	if got := err.Error(); got != want {
		t.Fatalf("unexpected error string: %q", got)
	}
}
