package storkutil

// The specialized map that keeps the order of the keys. The exported
// records use it to keep the columns in the schema order.
//
// It supports two ways of iterating over the map:
//
// 1. Iterating over the keys:
//
//	for _, key := range m.GetKeys() {
//		value, _ := m.Get(key)
//		// Do something with the key and value.
//	}
//
// 2. Iterating with callback function:
//
//	m.ForEach(func(key TKey, value TValue) bool {
//		// Do something with the key and value.
//		return true
//	})
type OrderedMap[TKey comparable, TValue any] struct {
	keys []TKey
	data map[TKey]TValue
}

// Creates a new instance of the ordered map.
func NewOrderedMap[TKey comparable, TValue any]() *OrderedMap[TKey, TValue] {
	return &OrderedMap[TKey, TValue]{
		keys: make([]TKey, 0),
		data: make(map[TKey]TValue),
	}
}

// Sets the value for the given key. If the key already exists, the value will
// be updated and the key keeps its original position.
func (m *OrderedMap[TKey, TValue]) Set(key TKey, value TValue) {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
}

// Gets the value for the given key. If the key does not exist, the second
// return value will be false.
func (m *OrderedMap[TKey, TValue]) Get(key TKey) (TValue, bool) {
	value, ok := m.data[key]
	return value, ok
}

// Returns a copy of the keys in the order they were inserted.
func (m *OrderedMap[TKey, TValue]) GetKeys() []TKey {
	keys := make([]TKey, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Returns a slice of values in the order they were inserted.
func (m *OrderedMap[TKey, TValue]) GetValues() []TValue {
	values := make([]TValue, 0, len(m.keys))
	for _, key := range m.keys {
		values = append(values, m.data[key])
	}
	return values
}

// Returns the number of key-value pairs in the map.
func (m *OrderedMap[TKey, TValue]) GetSize() int {
	return len(m.keys)
}

// Iterates over the key-value pairs in the map in the order they were inserted.
// The iteration can be stopped by returning false from the callback function.
func (m *OrderedMap[TKey, TValue]) ForEach(callback func(TKey, TValue) bool) {
	for _, key := range m.keys {
		if !callback(key, m.data[key]) {
			break
		}
	}
}
