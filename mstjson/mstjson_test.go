package mstjson_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstlab/tpmverify/mstjson"
)

func TestWriteTestReport(t *testing.T) {
	var buf bytes.Buffer
	report := mstjson.TestReport{"kruskal": true, "boruvka": false}
	require.NoError(t, mstjson.Write(&buf, report))
	assert.JSONEq(t, `{"boruvka": false, "kruskal": true}`, buf.String())
}

func TestWriteInfoReport(t *testing.T) {
	var buf bytes.Buffer
	report := mstjson.InfoReport{Connected: true, UniqueWeights: true, Vertices: 3, Edges: 3}
	require.NoError(t, mstjson.Write(&buf, report))
	assert.JSONEq(t, `{"connected": true, "unique_weights": true, "vertices": 3, "edges": 3}`, buf.String())
}
