// Package export flattens chart data and derived indicator series into
// tabular form and writes them as CSV or XLSX workbooks.
//
// A Table is built from an indicator source, then derived results are
// attached as extra columns. Results cover a suffix of the source range;
// the leading rows of a derived column are left blank.
package export
