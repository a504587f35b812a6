/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the settings of the sqlrecord command: which store to
// open and which tables to expose.
//
// Settings come from a YAML file, then from the environment:
//
//	SQLRECORD_DRIVER     sqlite, postgres, pgx, mysql or dynamodb
//	SQLRECORD_DSN        database/sql data source name
//	SQLRECORD_LOG_LEVEL  zerolog level name
//	AWS_ACCESS_KEY       DynamoDB static credentials
//	AWS_SECRET_KEY
//	AWS_REGION
//	AWS_DDB_ENDPOINT     endpoint override, e.g. DynamoDB Local
//
// A .env file in the working directory supplies variables the environment
// does not set.
package config
