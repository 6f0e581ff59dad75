package bpmn

import (
	"log/slog"
)

// taskTags are the BPMN task subtypes that carry business metadata.
var taskTags = []string{"bpmn:task", "bpmn:sendTask", "bpmn:manualTask"}

// Participant is one collaboration participant (a swimlane).
type Participant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProcessRef string `json:"process_ref"`
}

// Collaboration groups the participants of one bpmn:collaboration block.
type Collaboration struct {
	Participants []Participant `json:"participants"`
	MessageFlows []any         `json:"message_flows,omitempty"`
}

// Process is one bpmn:process with its extracted tasks and the raw
// structural elements kept for completeness.
type Process struct {
	Name        string `json:"name"`
	Swimlane    string `json:"swimlane"`
	Tasks       []Task `json:"tasks"`
	StartEvents []any  `json:"start_events,omitempty"`
	EndEvents   []any  `json:"end_events,omitempty"`
	Gateways    []any  `json:"gateways,omitempty"`
}

// FileInfo carries exporter metadata from the definitions element. Advisory
// only; nothing downstream depends on it.
type FileInfo struct {
	Exporter        string `json:"exporter"`
	ExporterVersion string `json:"exporter_version"`
	TargetNamespace string `json:"target_namespace"`
}

// Document is the parsed form of one BPMN file: the flat task list across
// all processes plus the structural maps the aggregation layer needs.
// Constructed fresh per parse, immutable once returned.
type Document struct {
	Collaborations    map[string]Collaboration `json:"collaborations"`
	Processes         map[string]Process       `json:"processes"`
	Tasks             []Task                   `json:"tasks"`
	ProcessToSwimlane map[string]string        `json:"process_to_swimlane"`
	FileInfo          FileInfo                 `json:"file_info"`
}

// ParseDocument decodes BPMN XML and extracts every task with its resolved
// swimlane. Malformed XML is the only error; a well-formed document without
// the expected structure parses to an empty Document. Per-task anomalies are
// logged on log and degrade to default stubs.
func ParseDocument(data []byte, log *slog.Logger) (*Document, error) {
	if log == nil {
		log = slog.Default()
	}

	tree, err := DecodeTree(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Collaborations:    make(map[string]Collaboration),
		Processes:         make(map[string]Process),
		ProcessToSwimlane: make(map[string]string),
	}

	definitions := AsMap(tree["bpmn:definitions"])
	if definitions == nil {
		log.Warn("document has no bpmn:definitions element")
		return doc, nil
	}

	doc.FileInfo = FileInfo{
		Exporter:        Attr(definitions, "exporter", "Unknown"),
		ExporterVersion: Attr(definitions, "exporterVersion", "Unknown"),
		TargetNamespace: Attr(definitions, "targetNamespace", "Unknown"),
	}

	for _, v := range AsList(Child(definitions, "bpmn:collaboration")) {
		collab := AsMap(v)
		if collab == nil {
			continue
		}
		id := Attr(collab, "id", "Unknown")
		c := Collaboration{
			MessageFlows: AsList(Child(collab, "bpmn:messageFlow")),
		}
		for _, pv := range AsList(Child(collab, "bpmn:participant")) {
			pm := AsMap(pv)
			if pm == nil {
				continue
			}
			p := Participant{
				ID:         Attr(pm, "id", "Unknown"),
				Name:       Attr(pm, "name", "Unknown"),
				ProcessRef: Attr(pm, "processRef", "Unknown"),
			}
			c.Participants = append(c.Participants, p)
			doc.ProcessToSwimlane[p.ProcessRef] = p.Name
		}
		doc.Collaborations[id] = c
	}

	for _, v := range AsList(Child(definitions, "bpmn:process")) {
		proc := AsMap(v)
		if proc == nil {
			continue
		}
		processID := Attr(proc, "id", "Unknown")
		processName := Attr(proc, "name", "Unknown")

		// A participant name overrides the bare process name.
		swimlane, ok := doc.ProcessToSwimlane[processID]
		if !ok {
			swimlane = processName
		}

		p := Process{
			Name:        processName,
			Swimlane:    swimlane,
			StartEvents: AsList(Child(proc, "bpmn:startEvent")),
			EndEvents:   AsList(Child(proc, "bpmn:endEvent")),
			Gateways:    AsList(Child(proc, "bpmn:exclusiveGateway")),
		}
		for _, tag := range taskTags {
			for _, tv := range AsList(Child(proc, tag)) {
				tm := AsMap(tv)
				if tm == nil {
					continue
				}
				task := parseTask(tm, swimlane, tag, processID, log)
				p.Tasks = append(p.Tasks, task)
				doc.Tasks = append(doc.Tasks, task)
			}
		}
		doc.Processes[processID] = p
	}

	log.Debug("parsed BPMN document",
		"processes", len(doc.Processes),
		"collaborations", len(doc.Collaborations),
		"tasks", len(doc.Tasks))
	return doc, nil
}
