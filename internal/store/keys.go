package store

import "sync"

// indexMarker separates index keys from row keys under an entity prefix.
const indexMarker = "idx:"

// keyPool provides reusable byte slices for building database keys on
// read paths. Badger retains key slices passed to Txn.Set and Txn.Delete
// until the transaction commits, so write paths must not use pooled
// buffers; they build string keys and hand fresh copies to the txn.
var keyPool = sync.Pool{
	New: func() any {
		// 256 bytes covers prefix + index name + value + record id.
		return make([]byte, 0, 256)
	},
}

// buildKey constructs a row key from prefix and id using a pooled buffer.
// Read paths only. Callers MUST call releaseKey when done with the key.
func buildKey(prefix, id string) []byte {
	buf, _ := keyPool.Get().([]byte)
	buf = buf[:0] // Reset length, keep capacity
	buf = append(buf, prefix...)
	buf = append(buf, id...)
	return buf
}

// rowKey constructs a row key as a string, safe to copy into a write op.
func rowKey(prefix, id string) string {
	return prefix + id
}

// indexKey constructs a composite index key as a string: the indexed
// value plus the record id, so one index value may map to many records.
func indexKey(prefix, indexName, value, id string) string {
	return prefix + indexMarker + indexName + ":" + value + ":" + id
}

// releaseKey returns a key buffer to the pool for reuse.
// After calling this, the key slice must not be used.
func releaseKey(key []byte) {
	// Only pool buffers with reasonable capacity.
	if cap(key) <= 512 {
		keyPool.Put(key[:0])
	}
}
