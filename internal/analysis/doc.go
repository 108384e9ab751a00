// Package analysis computes the descriptive aggregates of a cleaned
// catalog: content-type and rating distributions, the release-year trend,
// genre and country frequencies, duration statistics, and the year-by-month
// addition pivot.
//
// Every analyzer is a pure function over the table; nothing here mutates
// state. Ordered results break count ties by first encounter in table
// order, matching the iteration the counts were accumulated in.
package analysis
