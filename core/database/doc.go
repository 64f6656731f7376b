// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure sqlite or MySQL connections
// based on the application's configuration. The canonical record set lives in
// two tables, runners and records, which the feature packages query through
// typed models.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. The
// sqlite driver is the default since the typical deployment stores everything
// in a single database file next to the binary.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. GetTableColumns
// and VerifyColumns allow the startup path to confirm that a pre-existing
// database file carries the columns the record store expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyColumns(db, "records", []string{"id", "realtime"})
package database
