package pools

import (
	"testing"
)

const testValue = "value"

func TestStringSlicePool(t *testing.T) {
	pool := NewStringSlicePool(10)

	// Test Get
	slice := pool.Get()
	if slice == nil {
		t.Fatal("Get() returned nil slice")
	}
	if len(slice) != 0 {
		t.Error("New slice should have zero length")
	}
	if cap(slice) < 10 {
		t.Error("Slice should have at least initial capacity")
	}

	// Test slice usage
	slice = append(slice, "field1", "field2", "field3")
	if len(slice) != 3 {
		t.Error("Slice should contain appended data")
	}

	// Test Put
	pool.Put(slice)

	// Get another slice - should be reset but keep capacity
	slice2 := pool.Get()
	if len(slice2) != 0 {
		t.Error("Reused slice should have zero length")
	}
	if cap(slice2) < 10 {
		t.Error("Reused slice should maintain capacity")
	}
}

func TestStringSlicePoolCapacityLimit(t *testing.T) {
	pool := NewStringSlicePool(5)

	slice := pool.Get()
	// Make slice grow beyond 4x initial capacity
	for i := 0; i < 25; i++ { // 5x initial capacity
		slice = append(slice, "field")
	}

	if cap(slice) < 25 {
		t.Error("Slice should have grown to accommodate data")
	}

	// Put back - should be rejected due to size
	pool.Put(slice)

	// Get new slice - should be fresh (not the oversized one)
	slice2 := pool.Get()
	if cap(slice2) >= 25 {
		t.Error("Oversized slice should not have been reused")
	}
}

func TestMapPool(t *testing.T) {
	pool := NewMapPool()

	// Test Get
	m := pool.Get()
	if m == nil {
		t.Fatal("Get() returned nil map")
	}
	if len(m) != 0 {
		t.Error("New map should be empty")
	}

	// Test map usage
	m["key1"] = "value1"
	m["key2"] = "value2"
	if len(m) != 2 {
		t.Error("Map should contain added data")
	}

	// Test Put
	pool.Put(m)

	// Get another map - should be cleared
	m2 := pool.Get()
	if len(m2) != 0 {
		t.Error("Reused map should be empty")
	}

	// Should be able to use the map normally
	m2["test"] = testValue
	if m2["test"] != testValue {
		t.Error("Reused map should work normally")
	}
}

func TestMapPoolSizeLimit(t *testing.T) {
	pool := NewMapPool()

	m := pool.Get()
	// Add more than 100 entries
	for i := 0; i < 150; i++ {
		m[string(rune(i))] = testValue
	}

	if len(m) != 150 {
		t.Error("Map should contain all added entries")
	}

	// Put back - should be rejected due to size
	pool.Put(m)

	// Get new map - should be fresh (not the oversized one)
	m2 := pool.Get()
	if len(m2) != 0 {
		t.Error("Map should be fresh and empty")
	}
}

func TestGlobalPools(t *testing.T) {
	fields := GlobalPools.CSVFields.Get()
	if fields == nil {
		t.Error("GlobalPools.CSVFields.Get() returned nil")
	}
	GlobalPools.CSVFields.Put(fields)

	record := GlobalPools.CSVRecord.Get()
	if record == nil {
		t.Error("GlobalPools.CSVRecord.Get() returned nil")
	}
	GlobalPools.CSVRecord.Put(record)
}

func TestPooledCSVParser(t *testing.T) {
	parser := NewPooledCSVParser()

	headers := []string{"id", "name", "type"}
	fields := []string{"123", "Test Station", "0"}

	// Test ParseRecord
	record := parser.ParseRecord(fields, headers)
	if record == nil {
		t.Fatal("ParseRecord returned nil")
	}

	if record["id"] != "123" {
		t.Error("Record should contain correct id")
	}
	if record["name"] != "Test Station" {
		t.Error("Record should contain correct name")
	}
	if record["type"] != "0" {
		t.Error("Record should contain correct type")
	}

	// Test ReturnRecord
	parser.ReturnRecord(record)

	// Test field operations
	fieldSlice := parser.GetFields()
	if fieldSlice == nil {
		t.Error("GetFields returned nil")
	}
	parser.ReturnFields(fieldSlice)
}

func TestPooledCSVParserMismatchedFields(t *testing.T) {
	parser := NewPooledCSVParser()

	headers := []string{"id", "name", "type"}
	fields := []string{"123", "Test Station"} // Missing type field

	record := parser.ParseRecord(fields, headers)
	if record != nil {
		t.Error("ParseRecord should return nil for mismatched field count")
	}
}

// Benchmark tests
func BenchmarkStringSlicePool(b *testing.B) {
	pool := NewStringSlicePool(32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slice := pool.Get()
		slice = append(slice, "field1", "field2", "field3", "field4", "field5")
		pool.Put(slice)
	}
}

func BenchmarkMapPool(b *testing.B) {
	pool := NewMapPool()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := pool.Get()
		m["id"] = "123"
		m["name"] = "Test Station"
		m["type"] = "0"
		pool.Put(m)
	}
}

func BenchmarkPooledCSVParser(b *testing.B) {
	parser := NewPooledCSVParser()
	headers := []string{"id", "name", "type", "lat", "lon"}
	fields := []string{"123", "Test Station", "0", "37.7749", "-122.4194"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		record := parser.ParseRecord(fields, headers)
		parser.ReturnRecord(record)
	}
}
