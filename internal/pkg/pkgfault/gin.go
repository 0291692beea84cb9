package pkgfault

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gofault/internal/pkg/pkgvalidate"
)

// Gin returns a gin middleware rendering the last error recorded with
// c.Error by downstream handlers. Failures from gin's binding validator
// (c.ShouldBindJSON and friends) are rendered as validation failures.
// Unclassified errors stay in c.Errors for gin's own handling.
//
// Gin switches gin's binding validator to JSON field names, so install it
// with engine.Use before serving requests.
func Gin(i *Interceptor) gin.HandlerFunc {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		pkgvalidate.UseJSONNames(v)
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if verr, ok := pkgvalidate.Translate(err); ok {
			err = verr
		}

		if i.HandleError(c.Writer, c.Request, err) {
			c.Abort()
		}
	}
}

// GinNoRoute returns a gin NoRoute handler raising a RouteNotFoundError, to be
// rendered by the Gin middleware.
func GinNoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		//nolint:errcheck // the error is recorded on the context
		c.Error(&pkgerror.RouteNotFoundError{
			Method:  c.Request.Method,
			URL:     RequestURL(c.Request),
			Message: pkgerror.RouteNotFoundSentinel,
		})
	}
}
