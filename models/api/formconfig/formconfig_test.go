package formconfigapimodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldDefinition(t *testing.T) {
	t.Run(`sqlite flags`, func(t *testing.T) {
		defs := []FieldDefinition{}
		payload := `[{"id":1,"name":"email","required":1,"is_core":true,"field_order":null,"options":null,"validations":null},
			{"id":2,"name":"hobby","required":0,"is_core":null,"field_order":4}]`
		err := json.Unmarshal([]byte(payload), &defs)
		require.Nil(t, err)
		require.True(t, bool(defs[0].Required))
		require.True(t, bool(defs[0].IsCore))
		require.Equal(t, 0, defs[0].FieldOrder)
		require.False(t, bool(defs[1].Required))
		require.False(t, bool(defs[1].IsCore))
		require.Equal(t, 4, defs[1].FieldOrder)
	})

	t.Run(`bad flag`, func(t *testing.T) {
		var f Flag
		require.NotNil(t, json.Unmarshal([]byte(`"maybe"`), &f))
	})

	t.Run(`partial update omits unset attributes`, func(t *testing.T) {
		label := "Full Name"
		data, err := json.Marshal(FieldUpdate{Label: &label})
		require.Nil(t, err)
		require.Equal(t, `{"label":"Full Name"}`, string(data))
		require.True(t, FieldUpdate{}.IsEmpty())

		required := false
		data, err = json.Marshal(FieldUpdate{Required: &required})
		require.Nil(t, err)
		require.Equal(t, `{"required":false}`, string(data))
	})
}

func TestSection(t *testing.T) {
	sections := []Section{}
	err := json.Unmarshal([]byte(`["Personal Details",{"name":"Documents","description":null,"icon":"file-alt","order":3},{"name":"X","icon":""}]`), &sections)
	require.Nil(t, err)
	require.Equal(t, Section{Name: "Personal Details", Icon: "folder"}, sections[0])
	require.Equal(t, Section{Name: "Documents", Icon: "file-alt", Order: 3}, sections[1])
	require.Equal(t, "folder", sections[2].Icon)

	data, err := json.Marshal(FieldReorderRequest{FieldOrders: [][2]int{{5, 1}, {2, 2}}})
	require.Nil(t, err)
	require.Equal(t, `{"field_orders":[[5,1],[2,2]]}`, string(data))
}
