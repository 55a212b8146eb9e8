// Package finance implements a small personal finance tracker: income and
// expense transactions recorded per user, exact balance computation on
// decimal arithmetic, date-sorted textual reports, and persistence of the
// whole registry to a single JSON file.
//
// The package is the domain core consumed by the pfm command line tool in
// cmd/ and pfm/.
package finance
