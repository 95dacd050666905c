package inventory

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeEngine serves canned payloads in a fixed identifier order
type fakeEngine struct {
	ids      []string
	payloads map[string]string
	listErr  error
	failing  map[string]bool
}

func (f *fakeEngine) ContainerIDs(ctx context.Context, all bool) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.ids, nil
}

func (f *fakeEngine) InspectRaw(ctx context.Context, id string) ([]byte, error) {
	if f.failing[id] {
		return nil, fmt.Errorf("no such container: %s", id)
	}
	payload, ok := f.payloads[id]
	if !ok {
		return nil, nil
	}
	return []byte(payload), nil
}

func hostName(t *testing.T) string {
	t.Helper()
	host, err := os.Hostname()
	if err != nil {
		host = ""
	}
	return host
}

func TestSweepOnePerIDInOrder(t *testing.T) {
	engine := &fakeEngine{
		ids: []string{"c1", "c2", "c3"},
		payloads: map[string]string{
			"c1": `{"Id":"c1","State":{"ExitCode":0,"Running":true}}`,
			"c2": `{"Id":"c2","State":{"ExitCode":0,"Running":false}}`,
			"c3": `{"Id":"c3","State":{"ExitCode":2,"Running":false}}`,
		},
	}
	c := NewCollector(engine, &recorder{})

	records := c.Sweep(context.Background())

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, id := range engine.ids {
		if records[i].ContainerID != id {
			t.Errorf("record %d: container %q, expected %q", i, records[i].ContainerID, id)
		}
	}
}

func TestSweepHostStamp(t *testing.T) {
	engine := &fakeEngine{
		ids: []string{"c1", "c2"},
		payloads: map[string]string{
			"c1": `{"Id":"c1","Image":"sha256:aaa"}`,
		},
		failing: map[string]bool{"c2": true},
	}
	c := NewCollector(engine, &recorder{})

	records := c.Sweep(context.Background())

	host := hostName(t)
	for i, rec := range records {
		if rec.Host != host {
			t.Errorf("record %d: host %q, expected %q", i, rec.Host, host)
		}
	}
	// The image identity is kept, the host stamp has its own field
	if records[0].Image != "sha256:aaa" {
		t.Errorf("image %q", records[0].Image)
	}
}

func TestSweepInspectFailureDegrades(t *testing.T) {
	engine := &fakeEngine{
		ids: []string{"good", "bad"},
		payloads: map[string]string{
			"good": `{"Id":"good","State":{"ExitCode":0,"Running":true}}`,
		},
		failing: map[string]bool{"bad": true},
	}
	rep := &recorder{}
	c := NewCollector(engine, rep)

	records := c.Sweep(context.Background())

	if len(records) != 2 {
		t.Fatalf("failed inspect must not drop the record, got %d records", len(records))
	}

	want := Record{Host: hostName(t)}
	if diff := cmp.Diff(want, records[1]); diff != "" {
		t.Errorf("degraded record mismatch (-want +got):\n%s", diff)
	}

	if len(rep.warnings) != 1 || rep.warnings[0].container != "bad" {
		t.Errorf("expected one warning naming 'bad', got %+v", rep.warnings)
	}
}

func TestSweepEmptyPayload(t *testing.T) {
	engine := &fakeEngine{ids: []string{"gone"}}
	rep := &recorder{}
	c := NewCollector(engine, rep)

	records := c.Sweep(context.Background())

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := Record{Host: hostName(t)}
	if diff := cmp.Diff(want, records[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if len(rep.warnings) != 1 {
		t.Errorf("expected one warning, got %+v", rep.warnings)
	}
}

func TestSweepListFailure(t *testing.T) {
	engine := &fakeEngine{listErr: fmt.Errorf("engine is down")}
	rep := &recorder{}
	c := NewCollector(engine, rep)

	records := c.Sweep(context.Background())

	if len(records) != 0 {
		t.Errorf("expected empty sweep, got %d records", len(records))
	}
	if len(rep.warnings) != 1 || rep.warnings[0].container != "" {
		t.Errorf("expected one host-level warning, got %+v", rep.warnings)
	}
}

func TestSweepFullRecord(t *testing.T) {
	payload := `{
		"Id": "abc123",
		"Image": "sha256:0ff",
		"Created": "2024-03-01T09:59:00Z",
		"Config": {
			"Hostname": "web1",
			"Env": ["PATH=/bin"],
			"Cmd": ["nginx"],
			"Labels": {"com.docker.compose.project": "myapp"}
		},
		"State": {"ExitCode": 0, "Running": true, "StartedAt": "2024-03-01T10:00:00Z", "FinishedAt": "0001-01-01T00:00:00Z"},
		"HostConfig": {"Links": [], "PortBindings": {}}
	}`
	engine := &fakeEngine{
		ids:      []string{"abc123"},
		payloads: map[string]string{"abc123": payload},
	}
	rep := &recorder{}
	c := NewCollector(engine, rep)

	records := c.Sweep(context.Background())

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	want := Record{
		ContainerID:  "abc123",
		Image:        "sha256:0ff",
		Created:      "2024-03-01T09:59:00Z",
		Host:         hostName(t),
		Hostname:     "web1",
		Env:          `["PATH=/bin"]`,
		Command:      `["nginx"]`,
		ComposeGroup: "myapp",
		ExitCode:     0,
		State:        StateRunning,
		StartedAt:    "2024-03-01T10:00:00Z",
		FinishedAt:   "0001-01-01T00:00:00Z",
		Links:        `[]`,
		Ports:        `{}`,
	}
	if diff := cmp.Diff(want, records[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if len(rep.warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", rep.warnings)
	}
}

func TestSweepStats(t *testing.T) {
	engine := &fakeEngine{
		ids:     []string{"c1", "c2"},
		failing: map[string]bool{"c1": true, "c2": true},
	}
	c := NewCollector(engine, &recorder{})

	c.Sweep(context.Background())
	c.Sweep(context.Background())

	if c.stats.sweeps != 2 {
		t.Errorf("sweeps %d", c.stats.sweeps)
	}
	if c.stats.lastRecords != 2 {
		t.Errorf("last records %d", c.stats.lastRecords)
	}
	if c.stats.warnings != 4 {
		t.Errorf("warnings %d", c.stats.warnings)
	}
}
