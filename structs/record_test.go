package structs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"ip":"8.8.8.8","hostname":"dns.google","city":"Mountain View","region":"California","country":"US","loc":"37.4056,-122.0775","org":"AS15169 Google LLC","postal":"94043","timezone":"America/Los_Angeles"}`

func TestRecordKeepsProviderOrder(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, json.Unmarshal([]byte(sample), rec))
	assert.Equal(t, []string{"ip", "hostname", "city", "region", "country", "loc", "org", "postal", "timezone"}, rec.Keys())
}

func TestRecordRoundTrip(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, json.Unmarshal([]byte(sample), rec))
	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, sample, string(out))
}

func TestRecordNumbersSurviveRoundTrip(t *testing.T) {
	in := `{"latitude":37.4056,"asn":15169,"big":12345678901234567890}`
	rec := NewRecord()
	require.NoError(t, json.Unmarshal([]byte(in), rec))
	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestRecordNestedValues(t *testing.T) {
	in := `{"ip":"1.1.1.1","asn":{"asn":"AS13335","name":"Cloudflare, Inc."}}`
	rec := NewRecord()
	require.NoError(t, json.Unmarshal([]byte(in), rec))
	v, ok := rec.Get("asn")
	require.True(t, ok)
	nested, ok := v.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AS13335", nested["asn"])
	assert.Equal(t, `{"asn":"AS13335","name":"Cloudflare, Inc."}`, rec.String("asn"))
}

func TestRecordSetKeepsFirstPosition(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Set("a", "3")
	assert.Equal(t, []string{"a", "b"}, rec.Keys())
	assert.Equal(t, "3", rec.String("a"))
}

func TestRecordString(t *testing.T) {
	rec := NewRecord()
	require.NoError(t, json.Unmarshal([]byte(`{"s":"x","n":1.5,"b":false,"null":null}`), rec))
	assert.Equal(t, "x", rec.String("s"))
	assert.Equal(t, "1.5", rec.String("n"))
	assert.Equal(t, "false", rec.String("b"))
	assert.Equal(t, "", rec.String("null"))
	assert.Equal(t, "", rec.String("missing"))
}

func TestRecordRejectsNonObject(t *testing.T) {
	rec := NewRecord()
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), rec))
	assert.Error(t, json.Unmarshal([]byte(`"scalar"`), rec))
}
