package ship

import (
	"bytes"
	"html/template"
)

var statusColors = map[Status]string{
	Active:  "#10B981",
	Standby: "#F59E0B",
	Offline: "#EF4444",
}

// Color returns the marker color for s, or "" for an unknown status.
func Color(s Status) string {
	return statusColors[s]
}

var iconTemplate = template.Must(template.New("icon").Parse(`<div style="width: 40px; height: 40px; position: relative; transform: rotate({{.Heading}}deg);">` +
	`<div style="width: 100%; height: 100%; background: {{.Color}}; border-radius: 50% 50% 50% 0; border: 2px solid white; box-shadow: 0 2px 8px rgba(0,0,0,0.3); display: flex; align-items: center; justify-content: center; font-size: 16px; color: white;">⚓</div>` +
	`<div style="position: absolute; top: -25px; left: 50%; transform: translateX(-50%) rotate({{.Counter}}deg); background: rgba(0,0,0,0.8); color: white; padding: 2px 6px; border-radius: 4px; font-size: 10px; white-space: nowrap; pointer-events: none;">{{.Name}}</div>` +
	`</div>`))

// IconHTML renders the rotated map marker for s. The label stays upright.
func IconHTML(s Ship) (string, error) {
	var buf bytes.Buffer
	err := iconTemplate.Execute(&buf, struct {
		Heading float64
		Counter float64
		Color   string
		Name    string
	}{
		Heading: s.Heading,
		Counter: -s.Heading,
		Color:   Color(s.Status),
		Name:    s.Name,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
