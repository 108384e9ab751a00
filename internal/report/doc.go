// Package report renders pipeline progress and analyzer results to the
// console: stage headings, the dataset overview, the cleaning summary, one
// section per aggregate, and the completion summary.
//
// Output is for humans, not machines. Headings are colorized only when the
// destination is a terminal; counts are printed with thousands separators.
package report
