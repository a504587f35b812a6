/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

// database/sql drivers selectable with the driver setting.
import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)
