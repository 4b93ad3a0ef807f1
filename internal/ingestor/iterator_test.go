// Copyright 2024-2025 logmngr authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingestor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSliceIterator(t *testing.T) {
	data := []string{"a", "b", "c"}
	iterator := NewSliceIterator(data)

	assert.NotNil(t, iterator)

	var results []string
	for iterator.Next() {
		results = append(results, iterator.Value())
	}

	assert.NoError(t, iterator.Err())
	assert.Equal(t, data, results)
	assert.NoError(t, iterator.Close())
}

func TestSliceIterator_EmptySlice(t *testing.T) {
	var data []string
	iterator := NewSliceIterator(data)

	assert.NotNil(t, iterator)
	assert.False(t, iterator.Next())
	assert.NoError(t, iterator.Err())
	assert.NoError(t, iterator.Close())
}

func TestSliceIterator_SingleElement(t *testing.T) {
	data := []string{"single"}
	iterator := NewSliceIterator(data)

	assert.True(t, iterator.Next())
	assert.Equal(t, "single", iterator.Value())

	assert.False(t, iterator.Next())
	assert.NoError(t, iterator.Err())
}

func TestSliceIterator_MultipleIterations(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	iterator := NewSliceIterator(data)

	for i, expected := range data {
		assert.True(t, iterator.Next(), "Next() should return true for element %d", i)
		assert.Equal(t, expected, iterator.Value(), "Value should match for element %d", i)
	}

	assert.False(t, iterator.Next())
	assert.NoError(t, iterator.Err())
}

func TestSliceIterator_ValueBeforeNext(t *testing.T) {
	data := []string{"a", "b", "c"}
	iterator := NewSliceIterator(data)

	// Calling Value() before Next() should return zero value
	// This behavior is implementation-dependent, but shouldn't panic
	value := iterator.Value()
	assert.Equal(t, "", value)

	assert.True(t, iterator.Next())
	assert.Equal(t, "a", iterator.Value())
}

func TestIterator_InterfaceCompliance(t *testing.T) {
	var _ Iterator[string] = NewSliceIterator([]string{"test"})
}
