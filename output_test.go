package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iplook/lookup"
	"iplook/structs"
)

func TestSummarizeMixedBatch(t *testing.T) {
	// one good address, one rejected one: the run must flag the failure
	// and signal a non-zero exit
	good := structs.Result{Addr: "8.8.8.8"}
	good.Family, good.Err = lookup.ParseAddr(good.Addr)
	require.NoError(t, good.Err)
	good.Record = structs.NewRecord()
	good.Record.Set("ip", "8.8.8.8")

	bad := structs.Result{Addr: "bad-ip"}
	bad.Family, bad.Err = lookup.ParseAddr(bad.Addr)
	require.Error(t, bad.Err)

	var buf bytes.Buffer
	failed := summarize(&buf, []structs.Result{good, bad}, time.Second)
	assert.Equal(t, 1, failed)

	out := buf.String()
	assert.Contains(t, out, "1 of 2 lookups failed")
	assert.Contains(t, out, "ADDR")
	assert.Contains(t, out, "FAMILY")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "bad-ip")
	assert.Contains(t, out, "invalid IP address")
	assert.NotContains(t, out, "8.8.8.8")
}

func TestSummarizeAllOK(t *testing.T) {
	res := structs.Result{Addr: "8.8.8.8", Family: structs.IPv4, Record: structs.NewRecord()}
	var buf bytes.Buffer
	failed := summarize(&buf, []structs.Result{res}, time.Second)
	assert.Equal(t, 0, failed)
	assert.Empty(t, buf.String())
}
