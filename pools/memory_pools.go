// Package pools provides memory pooling functionality to reduce garbage collection
// overhead during GTFS validation, especially for CSV parsing operations
package pools

import (
	"sync"
)

// StringSlicePool provides a pool of string slices for CSV row parsing
type StringSlicePool struct {
	pool sync.Pool
	size int
}

// NewStringSlicePool creates a new string slice pool with the specified initial capacity
func NewStringSlicePool(initialCapacity int) *StringSlicePool {
	return &StringSlicePool{
		pool: sync.Pool{
			New: func() interface{} {
				return make([]string, 0, initialCapacity)
			},
		},
		size: initialCapacity,
	}
}

// Get retrieves a string slice from the pool
func (p *StringSlicePool) Get() []string {
	slice := p.pool.Get().([]string)
	return slice[:0] // Reset length but keep capacity
}

// Put returns a string slice to the pool for reuse
func (p *StringSlicePool) Put(slice []string) {
	// Only put back slices that aren't too large
	if cap(slice) <= p.size*4 {
		p.pool.Put(slice)
	}
}

// MapPool provides a pool of string maps for CSV record parsing
type MapPool struct {
	pool sync.Pool
}

// NewMapPool creates a new map pool
func NewMapPool() *MapPool {
	return &MapPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(map[string]string)
			},
		},
	}
}

// Get retrieves a map from the pool
func (p *MapPool) Get() map[string]string {
	m := p.pool.Get().(map[string]string)
	// Clear the map
	for k := range m {
		delete(m, k)
	}
	return m
}

// Put returns a map to the pool for reuse
func (p *MapPool) Put(m map[string]string) {
	// Only put back maps that aren't too large
	if len(m) <= 100 { // Reasonable limit for GTFS CSV rows
		p.pool.Put(m)
	}
}

// GlobalPools provides pre-configured pools for common use cases
var GlobalPools = struct {
	// CSVFields pool for CSV field parsing (typical GTFS row has ~10-20 fields)
	CSVFields *StringSlicePool
	// CSVRecord pool for CSV record maps
	CSVRecord *MapPool
}{
	CSVFields: NewStringSlicePool(32), // 32 fields capacity
	CSVRecord: NewMapPool(),
}

// PooledCSVParser provides a CSV parser that uses memory pools
type PooledCSVParser struct {
	fieldPool  *StringSlicePool
	recordPool *MapPool
}

// NewPooledCSVParser creates a new pooled CSV parser
func NewPooledCSVParser() *PooledCSVParser {
	return &PooledCSVParser{
		fieldPool:  GlobalPools.CSVFields,
		recordPool: GlobalPools.CSVRecord,
	}
}

// ParseRecord parses a CSV record using pooled memory
func (p *PooledCSVParser) ParseRecord(fields []string, headers []string) map[string]string {
	if len(fields) != len(headers) {
		return nil
	}

	record := p.recordPool.Get()

	for i, header := range headers {
		if i < len(fields) {
			record[header] = fields[i]
		}
	}

	return record
}

// ReturnRecord returns a record map to the pool
func (p *PooledCSVParser) ReturnRecord(record map[string]string) {
	p.recordPool.Put(record)
}

// GetFields gets a string slice from the pool
func (p *PooledCSVParser) GetFields() []string {
	return p.fieldPool.Get()
}

// ReturnFields returns a string slice to the pool
func (p *PooledCSVParser) ReturnFields(fields []string) {
	p.fieldPool.Put(fields)
}
