// Package catalog owns the tabular content-catalog model: the Record and
// Table types, the CSV loader, and the cleaning pass that produces the
// null-free table every analyzer consumes.
//
// Loading is all-or-nothing: a missing file surfaces as ErrNotFound, any
// decode failure as ErrParse, and no partial table is ever returned.
package catalog
