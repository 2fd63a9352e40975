package trello

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsOptionalFieldConvention(t *testing.T) {
	value := "hello"
	empty := ""

	tests := []struct {
		name      string
		build     func() *params
		wantKey   string
		wantSet   bool
		wantValue string
	}{
		{
			name:    "nil pointer omits the field",
			build:   func() *params { return newParams().SetOpt("due", nil) },
			wantKey: "due",
			wantSet: false,
		},
		{
			name:      "empty string pointer sends an empty value",
			build:     func() *params { return newParams().SetOpt("due", &empty) },
			wantKey:   "due",
			wantSet:   true,
			wantValue: "",
		},
		{
			name:      "concrete value is sent verbatim",
			build:     func() *params { return newParams().SetOpt("desc", &value) },
			wantKey:   "desc",
			wantSet:   true,
			wantValue: "hello",
		},
		{
			name:    "nil id list omits the field",
			build:   func() *params { return newParams().SetOptList("idMembers", nil) },
			wantKey: "idMembers",
			wantSet: false,
		},
		{
			name:      "empty id list clears the field",
			build:     func() *params { return newParams().SetOptList("idMembers", []string{}) },
			wantKey:   "idMembers",
			wantSet:   true,
			wantValue: "",
		},
		{
			name:      "id list joins with commas",
			build:     func() *params { return newParams().SetOptList("idMembers", []string{"m1", "m2"}) },
			wantKey:   "idMembers",
			wantSet:   true,
			wantValue: "m1,m2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build()
			_, present := p.values[tt.wantKey]
			assert.Equal(t, tt.wantSet, present)
			if tt.wantSet {
				assert.Equal(t, tt.wantValue, p.values.Get(tt.wantKey))
			}
		})
	}
}

func TestCreateCardDueFieldWireEncoding(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"id":"c1","name":"Card"}`))
	})

	// No due option at all: the parameter must not appear on the wire.
	_, err := client.CreateCard(context.Background(), "l1", "Card", &CreateCardOptions{})
	require.NoError(t, err)
	_, present := query["due"]
	assert.False(t, present, "omitted due must not be sent")

	// Explicit clear: due= (empty) must be sent.
	empty := ""
	_, err = client.CreateCard(context.Background(), "l1", "Card", &CreateCardOptions{Due: &empty})
	require.NoError(t, err)
	values, present := query["due"]
	require.True(t, present, "cleared due must be sent")
	assert.Equal(t, []string{""}, values)

	// Concrete value passes through verbatim.
	due := "2026-09-01T12:00:00Z"
	_, err = client.CreateCard(context.Background(), "l1", "Card", &CreateCardOptions{Due: &due})
	require.NoError(t, err)
	assert.Equal(t, due, query.Get("due"))
}

func TestUpdateCardOmitsUnsetFields(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"id":"c1","name":"Renamed"}`))
	})

	name := "Renamed"
	_, err := client.UpdateCard(context.Background(), "c1", &CardUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", query.Get("name"))
	for _, key := range []string{"desc", "closed", "due", "start", "idList", "idBoard", "pos", "idMembers", "idLabels"} {
		_, present := query[key]
		assert.False(t, present, "field %q was never supplied and must not be sent", key)
	}
}

func TestPositionPassedThroughVerbatim(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"id":"l1","name":"List"}`))
	})

	for _, pos := range []string{"top", "bottom", "65535.5"} {
		_, err := client.CreateList(context.Background(), "b1", "List", pos)
		require.NoError(t, err)
		assert.Equal(t, pos, query.Get("pos"))
	}
}

func TestSetCardCustomFieldValueSendsJSONBody(t *testing.T) {
	var contentType string
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusOK)
	})

	err := client.SetCardCustomFieldValue(context.Background(), "c1", "f1",
		&CustomFieldValue{Text: "shipped"}, "")
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	value, ok := body["value"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "shipped", value["text"])
}

func TestSetCardCustomFieldValueRequiresExactlyOneInput(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := client.SetCardCustomFieldValue(context.Background(), "c1", "f1", nil, "")
	assert.Error(t, err)

	err = client.SetCardCustomFieldValue(context.Background(), "c1", "f1",
		&CustomFieldValue{Text: "x"}, "opt1")
	assert.Error(t, err)
}

func TestAddCustomFieldOptionSendsJSONBody(t *testing.T) {
	var contentType string
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"id":"opt1","value":{"text":"High"}}`))
	})

	option, err := client.AddCustomFieldOption(context.Background(), "f1", "High", "red")
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	value, ok := body["value"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "High", value["text"])
	assert.Equal(t, "red", body["color"])
	assert.Equal(t, "opt1", option.ID)
}

func TestCreateBoardSendsQueryParametersNotBody(t *testing.T) {
	var query url.Values
	var bodyLen int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		raw, _ := io.ReadAll(r.Body)
		bodyLen = len(raw)
		w.Write([]byte(`{"id":"b1","name":"Board"}`))
	})

	desc := "project board"
	_, err := client.CreateBoard(context.Background(), "Board", &CreateBoardOptions{Desc: &desc})
	require.NoError(t, err)

	assert.Equal(t, "Board", query.Get("name"))
	assert.Equal(t, "project board", query.Get("desc"))
	assert.Zero(t, bodyLen, "query-parameter endpoints must not carry a body")
}

func TestCreateLabelValidatesColor(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"id":"lab1","name":"Bug","color":"red"}`))
	})

	_, err := client.CreateLabel(context.Background(), "b1", "Bug", "crimson")
	require.Error(t, err)
	assert.False(t, called)

	label, err := client.CreateLabel(context.Background(), "b1", "Bug", "red")
	require.NoError(t, err)
	assert.Equal(t, "red", label.Color)
}

func TestUpdateCheckItemValidatesState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"ci1","name":"Item","state":"complete"}`))
	})

	bad := "done"
	_, err := client.UpdateCheckItem(context.Background(), "c1", "ci1", &CheckItemUpdate{State: &bad})
	assert.Error(t, err)

	good := CheckItemComplete
	item, err := client.UpdateCheckItem(context.Background(), "c1", "ci1", &CheckItemUpdate{State: &good})
	require.NoError(t, err)
	assert.Equal(t, CheckItemComplete, item.State)
}
