package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONScan(t *testing.T) {
	t.Run("from bytes", func(t *testing.T) {
		var j JSON
		require.NoError(t, j.Scan([]byte(`{"requestedSlug":"team-1"}`)))
		assert.Equal(t, "team-1", j["requestedSlug"])
	})

	t.Run("from string", func(t *testing.T) {
		var j JSON
		require.NoError(t, j.Scan(`{"a":1}`))
		assert.Equal(t, float64(1), j["a"])
	})

	t.Run("nil stays nil", func(t *testing.T) {
		var j JSON
		require.NoError(t, j.Scan(nil))
		assert.Nil(t, j)
	})

	t.Run("rejects other types", func(t *testing.T) {
		var j JSON
		assert.Error(t, j.Scan(42))
	})
}

func TestJSONValue(t *testing.T) {
	v, err := JSON{"requestedSlug": "team-1"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"requestedSlug":"team-1"}`, string(v.([]byte)))

	var nilJSON JSON
	v, err = nilJSON.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestInt64ListRoundTrip(t *testing.T) {
	v, err := Int64List{1, 2, 3, 4, 5}.Value()
	require.NoError(t, err)

	var scanned Int64List
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, Int64List{1, 2, 3, 4, 5}, scanned)
}

func TestRouteListScan(t *testing.T) {
	raw := `[{"id":"r1","action":{"type":"customPageMessage","value":"Fallback"},"isFallback":true}]`

	var routes RouteList
	require.NoError(t, routes.Scan(raw))
	require.Len(t, routes, 1)
	assert.Equal(t, "r1", routes[0].ID)
	assert.Equal(t, RouteActionCustomPageMessage, routes[0].Action.Type)
	assert.True(t, routes[0].IsFallback)
	assert.Nil(t, routes[0].QueryValue)
}

func TestFieldListScan(t *testing.T) {
	raw := `[{"id":"f1","label":"Multi Select","type":"multiselect","options":["Option-1","Option-2"]}]`

	var fields FieldList
	require.NoError(t, fields.Scan([]byte(raw)))
	require.Len(t, fields, 1)
	assert.Equal(t, FormFieldTypeMultiSelect, fields[0].Type)
	assert.Equal(t, []string{"Option-1", "Option-2"}, fields[0].Options)
}
