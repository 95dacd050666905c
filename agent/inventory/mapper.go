package inventory

import "github.com/tidwall/gjson"

// Containers started by compose carry the project name in this label
const composeProjectLabel = `com\.docker\.compose\.project`

// applyConfig populates the fields derived from the Config sub-object
// of an inspect payload.
func applyConfig(rec *Record, entry gjson.Result, rep Reporter) {
	config := entry.Get("Config")
	if !config.IsObject() {
		rep.Warning(rec.ContainerID, "inspect payload carries no Config object")
		return
	}

	rec.Hostname = config.Get("Hostname").String()

	// Env and Cmd stay in their JSON form, entries may be null or nested
	if env := config.Get("Env"); env.Exists() {
		rec.Env = env.Raw
	}
	if cmd := config.Get("Cmd"); cmd.Exists() {
		rec.Command = cmd.Raw
	}

	labels := config.Get("Labels")
	if labels.IsObject() {
		if group := labels.Get(composeProjectLabel); group.Exists() {
			rec.ComposeGroup = group.String()
		}
	}
}

// applyState populates the fields derived from the State sub-object.
// The state enum precedence: a non-zero exit code always means Failed,
// only a cleanly exited (or never exited) container can be Running,
// Paused or Stopped.
func applyState(rec *Record, entry gjson.Result, rep Reporter) {
	state := entry.Get("State")
	if !state.IsObject() {
		rep.Warning(rec.ContainerID, "inspect payload carries no State object")
		return
	}

	exitCode := int(state.Get("ExitCode").Int())
	rec.ExitCode = exitCode

	switch {
	case exitCode != 0:
		rec.State = StateFailed
	case state.Get("Running").Bool():
		rec.State = StateRunning
	case state.Get("Paused").Bool():
		rec.State = StatePaused
	default:
		rec.State = StateStopped
	}

	rec.StartedAt = state.Get("StartedAt").String()
	rec.FinishedAt = state.Get("FinishedAt").String()
}

// applyHostConfig populates the fields derived from the HostConfig
// sub-object.
func applyHostConfig(rec *Record, entry gjson.Result, rep Reporter) {
	hostConfig := entry.Get("HostConfig")
	if !hostConfig.IsObject() {
		rep.Warning(rec.ContainerID, "inspect payload carries no HostConfig object")
		return
	}

	if links := hostConfig.Get("Links"); links.Exists() {
		rec.Links = links.Raw
	}
	if ports := hostConfig.Get("PortBindings"); ports.Exists() {
		rec.Ports = ports.Raw
	}
}
