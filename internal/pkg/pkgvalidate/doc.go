// Package pkgvalidate turns go-playground/validator failures into
// *pkgerror.ValidationError values addressed by JSON field name.
//
// pkgrouter.BindJSON validates with Default; the gin adapter in pkgfault
// points gin's binding validator at the same naming with UseJSONNames.
package pkgvalidate
