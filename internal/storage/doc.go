// Package storage loads marker recordings from the filesystem.
//
// A recording lives in <root>/<condition>/<jumpType>/ as six files,
// marker_1.txt through marker_6.txt, one per [motion.Marker]. Each file is a
// whitespace-delimited table with rows of time, x, y and optional further
// columns. The first marker's time column is the shared time axis.
//
// Every failure is reported as a [*LoadError] naming the recording and, where
// it applies, the marker file.
package storage
