package listeners

import "testing"

const sampleLsof = `COMMAND   PID USER   FD   TYPE DEVICE SIZE/OFF NODE NAME
node     4321 ops   23u  IPv4 0x1abc      0t0  TCP *:3000 (LISTEN)
node     4321 ops   24u  IPv6 0x1abd      0t0  TCP *:3000 (LISTEN)
postgres  812 ops    7u  IPv4 0x2def      0t0  TCP 127.0.0.1:5432 (LISTEN)
short line
`

func TestParseDeduplicatesByNamePort(t *testing.T) {
	services := Parse(sampleLsof, "2026-08-30T00:00:00Z")

	if len(services) != 2 {
		t.Fatalf("got %d services, want 2: %v", len(services), services)
	}

	node := services[0]
	if node.Name != "node" || node.Port != 3000 || node.PID != 4321 {
		t.Errorf("node service = %+v", node)
	}
	if node.Status != "up" {
		t.Errorf("status = %q, want up", node.Status)
	}
	if node.LastCheck != "2026-08-30T00:00:00Z" {
		t.Errorf("lastCheck = %q", node.LastCheck)
	}

	pg := services[1]
	if pg.Name != "postgres" || pg.Port != 5432 || pg.PID != 812 {
		t.Errorf("postgres service = %+v", pg)
	}
}

func TestParseEmptyOutput(t *testing.T) {
	if got := Parse("", "now"); len(got) != 0 {
		t.Errorf("expected no services, got %v", got)
	}
}
