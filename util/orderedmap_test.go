package storkutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	storkutil "isc.org/dhcp2ipam/util"
)

// Test that the NewOrderedMap function creates an empty map.
func TestNewOrderedMap(t *testing.T) {
	// Arrange & Act
	orderedMap := storkutil.NewOrderedMap[string, int]()

	// Assert
	require.NotNil(t, orderedMap)
	require.Zero(t, orderedMap.GetSize())
	require.Empty(t, orderedMap.GetKeys())
	require.Empty(t, orderedMap.GetValues())
}

// Test that the keys are returned in the insertion order and updating
// a value doesn't move the key.
func TestOrderedMapSetKeepsOrder(t *testing.T) {
	// Arrange
	orderedMap := storkutil.NewOrderedMap[string, int]()

	// Act
	orderedMap.Set("zeta", 1)
	orderedMap.Set("alpha", 2)
	orderedMap.Set("mu", 3)
	orderedMap.Set("zeta", 4)

	// Assert
	require.EqualValues(t, 3, orderedMap.GetSize())
	require.Equal(t, []string{"zeta", "alpha", "mu"}, orderedMap.GetKeys())
	require.Equal(t, []int{4, 2, 3}, orderedMap.GetValues())
	value, ok := orderedMap.Get("zeta")
	require.True(t, ok)
	require.Equal(t, 4, value)
	_, ok = orderedMap.Get("omega")
	require.False(t, ok)
}

// Test that modifying the returned keys doesn't affect the map.
func TestOrderedMapGetKeysReturnsCopy(t *testing.T) {
	orderedMap := storkutil.NewOrderedMap[string, int]()
	orderedMap.Set("foo", 1)

	keys := orderedMap.GetKeys()
	keys[0] = "bar"

	require.Equal(t, []string{"foo"}, orderedMap.GetKeys())
}

// Test that the iteration can be stopped.
func TestOrderedMapForEach(t *testing.T) {
	// Arrange
	orderedMap := storkutil.NewOrderedMap[string, int]()
	orderedMap.Set("a", 1)
	orderedMap.Set("b", 2)
	orderedMap.Set("c", 3)

	// Act
	var visited []string
	orderedMap.ForEach(func(key string, value int) bool {
		visited = append(visited, key)
		return value < 2
	})

	// Assert
	require.Equal(t, []string{"a", "b"}, visited)
}
