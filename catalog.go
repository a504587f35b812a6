/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlrecord

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/sqlrecord/model"
)

// Catalog keeps the record tables of an application: their metadata by table
// name, and the typed model.Table registered for each.
// It also serves as the ddb.ColumnSource of a DynamoDB cursor.
type Catalog struct {
	mu     sync.RWMutex
	metas  map[string]*model.Meta
	tables map[string]any
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		metas:  make(map[string]*model.Meta),
		tables: make(map[string]any),
	}
}

// RegisterMeta adds table metadata without a typed table.
func (c *Catalog) RegisterMeta(meta *model.Meta) error {
	if err := meta.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.metas[meta.Table]; exists {
		return fmt.Errorf("table %q already registered", meta.Table)
	}
	c.metas[meta.Table] = meta
	return nil
}

// Meta returns the metadata registered for a table.
func (c *Catalog) Meta(table string) (*model.Meta, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	meta, exists := c.metas[table]
	if !exists {
		return nil, fmt.Errorf("table %q not found", table)
	}
	return meta, nil
}

// Columns returns the column names of a table in declaration order.
func (c *Catalog) Columns(table string) ([]string, bool) {
	meta, err := c.Meta(table)
	if err != nil {
		return nil, false
	}
	return meta.Columns(), true
}

// Remove forgets a table.
func (c *Catalog) Remove(table string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.metas[table]; !exists {
		return fmt.Errorf("table %q not found", table)
	}
	delete(c.metas, table)
	delete(c.tables, table)
	return nil
}

// Tables returns the registered table names, sorted.
func (c *Catalog) Tables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.metas))
	for name := range c.metas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a typed table under its table name.
func Register[T any, PT interface {
	*T
	model.Record
}](c *Catalog, t *model.Table[T, PT]) error {
	meta := t.Meta()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.metas[meta.Table]; exists {
		return fmt.Errorf("table %q already registered", meta.Table)
	}
	c.metas[meta.Table] = meta
	c.tables[meta.Table] = t
	return nil
}

// Lookup returns the typed table registered under name.
func Lookup[T any, PT interface {
	*T
	model.Record
}](c *Catalog, name string) (*model.Table[T, PT], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, exists := c.tables[name]
	if !exists {
		return nil, fmt.Errorf("table %q not found", name)
	}
	typed, ok := t.(*model.Table[T, PT])
	if !ok {
		return nil, fmt.Errorf("table %q holds %T, not %T", name, t, (*model.Table[T, PT])(nil))
	}
	return typed, nil
}
