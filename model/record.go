/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

// Record is implemented by every type the mapping layer persists.
//
// Values must return one value per field of Meta, in the same order.
// Set assigns a deserialized value to the named field; Assign covers the
// usual conversions.
type Record interface {
	Meta() *Meta
	Values() []any
	Set(field string, value any) error
}
