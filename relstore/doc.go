// Package relstore loads companion-planting relationship datasets into an
// immutable benefit.Graph.
//
// Sources
//
//	Tabular (header row skipped; columns helper, helped[, effect]):
//	  - CSV    (.csv)                  encoding/csv
//	  - XLSX   (.xlsx)                 github.com/xuri/excelize/v2, first sheet or WithSheet
//	  - SQLite (.db, .sqlite, .sqlite3) table "relationships" or WithTable
//
//	Nested catalog (one record per plant, companions referenced by code):
//	  - JSON   (.json)  {"plants":[{"plantName","plantCode","companionPlantCodes":[...]}]}
//	  - YAML   (.yaml, .yml) the same shape
//
//	In the catalog form a plant Q listing code c in companionPlantCodes is
//	helped by the plant whose code is c. Codes are an import-time detail and
//	never leave this package; plants without companions are still registered
//	so they can be selected.
//
// Errors
//
//	Every failure is a *LoadError (errors.Is(err, ErrLoad) == true) carrying
//	the source name, the 1-based record number and the offending field when
//	known. The wrapped cause is one of ErrUnreadable, ErrMissingField,
//	ErrUnknownCode, ErrDuplicateCode, ErrUnsupportedFormat, a benefit sentinel
//	(ErrSelfLoop, ErrDuplicateEdge) or a context error. No partial graph is
//	ever returned.
//
// Duplicates
//
//	By default a repeated (helper, helped) pair keeps the last record and is
//	logged at warn level; WithDuplicatePolicy(benefit.RejectDuplicates) turns
//	it into a LoadError instead.
//
// Usage
//
//	g, err := relstore.LoadFile(ctx, "plants.csv", relstore.WithLogger(logger))
//	if err != nil {
//		var le *relstore.LoadError
//		if errors.As(err, &le) { ... le.Record ... }
//	}
package relstore
