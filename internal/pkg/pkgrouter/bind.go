package pkgrouter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgvalidate"
)

const maxBindBodyBytes = 1 << 20

// BindJSON decodes the JSON request body into dst and validates it with the
// `validate` struct tags.
//
// A malformed body returns a BadRequest application error; failed checks
// return a *pkgerror.ValidationError with status 400 and one FieldError per
// failed field, addressed by JSON name.
func BindJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return pkgerror.NewBadRequest("request body is required")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBindBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return pkgerror.NewBadRequest("request body is required")
		}
		return pkgerror.NewBadRequest("invalid request body")
	}

	return pkgvalidate.Struct(dst)
}
