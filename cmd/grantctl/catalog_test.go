package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"grantflow-be/pkg/workflow"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCatalogText(t *testing.T) {
	color.NoColor = true
	catalog := workflow.NewCatalog([]workflow.StepDefinition{
		{ID: "a", Title: "First", Phase: workflow.PhasePreparation, EstimatedTime: "1 hour"},
		{ID: "b", Title: "Second", Phase: workflow.PhaseRefinement, EstimatedTime: "2 hours"},
	})

	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, catalog, false))

	out := buf.String()
	assert.Contains(t, out, "Preparation\n")
	assert.Contains(t, out, "   1. First [a] (1 hour)")
	assert.Contains(t, out, "   2. Second [b] (2 hours)")
	assert.Contains(t, out, "2 steps in 2 phases")
}

func TestPrintCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, workflow.DefaultCatalog(), true))

	var groups []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &groups))
	assert.Len(t, groups, len(workflow.DefaultCatalog().Phases()))
}
