package bpmn

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const twoTaskDoc = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:camunda="http://camunda.org/schema/1.0/bpmn"
                  exporter="Camunda Modeler" exporterVersion="5.0.0"
                  targetNamespace="http://bpmn.io/schema/bpmn">
  <bpmn:collaboration id="C1">
    <bpmn:participant id="PA1" name="Finance" processRef="P1"/>
  </bpmn:collaboration>
  <bpmn:process id="P1" name="Internal Process A">
    <bpmn:task id="T1" name="Reconcile accounts">
      <bpmn:extensionElements>
        <camunda:properties>
          <camunda:property name="time_hhmm" value="2:00"/>
          <camunda:property name="cost_per_hour" value="100"/>
          <camunda:property name="other_costs" value="50"/>
          <camunda:property name="currency" value="CAD"/>
          <camunda:property name="task_owner" value="Alice"/>
          <camunda:property name="task_status" value="Completed"/>
        </camunda:properties>
      </bpmn:extensionElements>
    </bpmn:task>
    <bpmn:sendTask id="T2" name="Notify vendor">
      <bpmn:extensionElements>
        <camunda:properties>
          <camunda:property name="time_hhmm" value="3"/>
          <camunda:property name="cost_per_hour" value="0"/>
          <camunda:property name="other_costs" value="0"/>
        </camunda:properties>
      </bpmn:extensionElements>
    </bpmn:sendTask>
  </bpmn:process>
</bpmn:definitions>`

func TestParseDocument_EndToEnd(t *testing.T) {
	doc, err := ParseDocument([]byte(twoTaskDoc), discardLogger())
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 2)

	t1 := doc.Tasks[0]
	assert.Equal(t, "T1", t1.ID)
	assert.Equal(t, "Finance", t1.Swimlane)
	assert.Equal(t, "task", t1.Type)
	assert.Equal(t, 120, t1.TimeMinutes)
	assert.Equal(t, "02:00", t1.TimeDisplay)
	assert.InDelta(t, 200.0, t1.LaborCost, 1e-9)
	assert.InDelta(t, 250.0, t1.TotalCost, 1e-9)
	assert.Equal(t, "CAD", t1.Currency)
	assert.Equal(t, "Alice", t1.Owner)
	assert.True(t, t1.HasCostPerHour)

	t2 := doc.Tasks[1]
	assert.Equal(t, "sendTask", t2.Type)
	assert.Equal(t, 180, t2.TimeMinutes)
	assert.Equal(t, "03:00", t2.TimeDisplay)
	assert.InDelta(t, 3.0, t2.TimeHours, 1e-9)
	assert.Zero(t, t2.TotalCost)
	assert.Equal(t, "Unknown", t2.Owner)
}

func TestParseDocument_SwimlaneResolution(t *testing.T) {
	// Participant name wins over the process's own name.
	doc, err := ParseDocument([]byte(twoTaskDoc), discardLogger())
	require.NoError(t, err)
	for _, task := range doc.Tasks {
		assert.Equal(t, "Finance", task.Swimlane)
	}
	assert.Equal(t, "Finance", doc.ProcessToSwimlane["P1"])
	assert.Equal(t, "Internal Process A", doc.Processes["P1"].Name)

	// Without a collaboration mapping the process name is the fallback.
	noCollab := `<?xml version="1.0"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <bpmn:process id="P1" name="Internal Process A">
    <bpmn:task id="T1" name="Standalone"/>
  </bpmn:process>
</bpmn:definitions>`
	doc, err = ParseDocument([]byte(noCollab), discardLogger())
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, "Internal Process A", doc.Tasks[0].Swimlane)
}

func TestParseDocument_CorruptTaskDegradesToStub(t *testing.T) {
	corrupt := `<?xml version="1.0"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:camunda="http://camunda.org/schema/1.0/bpmn">
  <bpmn:collaboration id="C1">
    <bpmn:participant id="PA1" name="Sales" processRef="P1"/>
  </bpmn:collaboration>
  <bpmn:process id="P1" name="Pipeline">
    <bpmn:task id="T1" name="Good task">
      <bpmn:extensionElements>
        <camunda:properties>
          <camunda:property name="time_hhmm" value="1:00"/>
          <camunda:property name="cost_per_hour" value="80"/>
        </camunda:properties>
      </bpmn:extensionElements>
    </bpmn:task>
    <bpmn:task id="T2" name="Bad task">
      <bpmn:extensionElements>
        <camunda:properties>
          <camunda:property name="time_hhmm" value="2:00"/>
          <camunda:property name="cost_per_hour" value="eighty"/>
        </camunda:properties>
      </bpmn:extensionElements>
    </bpmn:task>
    <bpmn:task id="T3" name="Another good task">
      <bpmn:extensionElements>
        <camunda:properties>
          <camunda:property name="time_hhmm" value="0:30"/>
          <camunda:property name="cost_per_hour" value="60"/>
        </camunda:properties>
      </bpmn:extensionElements>
    </bpmn:task>
  </bpmn:process>
</bpmn:definitions>`

	doc, err := ParseDocument([]byte(corrupt), discardLogger())
	require.NoError(t, err)

	// One corrupt task must not shrink the list or disturb its siblings.
	require.Len(t, doc.Tasks, 3)

	stub := doc.Tasks[1]
	assert.Equal(t, "Unknown", stub.ID)
	assert.Equal(t, "Sales", stub.Swimlane)
	assert.Equal(t, "task", stub.Type)
	assert.Equal(t, "P1", stub.ProcessRef)
	assert.Zero(t, stub.TotalCost)
	assert.Zero(t, stub.TimeMinutes)

	assert.InDelta(t, 80.0, doc.Tasks[0].TotalCost, 1e-9)
	assert.InDelta(t, 30.0, doc.Tasks[2].TotalCost, 1e-9)
}

func TestParseDocument_MissingStructure(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{name: "no definitions", xml: `<root/>`},
		{name: "definitions without processes", xml: `<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL" exporter="x"/>`},
		{
			name: "process without tasks",
			xml: `<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <bpmn:process id="P1" name="Empty"/>
</bpmn:definitions>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.xml), discardLogger())
			require.NoError(t, err)
			require.NotNil(t, doc)
			assert.Empty(t, doc.Tasks)
		})
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	_, err := ParseDocument([]byte("<bpmn:definitions"), discardLogger())
	require.ErrorIs(t, err, ErrMalformedXML)
}

func TestParseDocument_Fixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "order-handling.bpmn"))
	require.NoError(t, err)

	doc, err := ParseDocument(data, discardLogger())
	require.NoError(t, err)

	require.Len(t, doc.Tasks, 4)
	assert.Len(t, doc.Processes, 2)
	assert.Equal(t, "Camunda Modeler", doc.FileInfo.Exporter)

	bySwimlane := make(map[string]int)
	for _, task := range doc.Tasks {
		bySwimlane[task.Swimlane]++
	}
	assert.Equal(t, 3, bySwimlane["Operations"])
	assert.Equal(t, 1, bySwimlane["Customer Service"])

	// manualTask subtype is picked up and namespace-stripped.
	var sawManual bool
	for _, task := range doc.Tasks {
		if task.Type == "manualTask" {
			sawManual = true
		}
	}
	assert.True(t, sawManual, "manual task should be extracted")
}
