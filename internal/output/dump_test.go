package output

import (
	"encoding/json"
	"os"
	"testing"

	"fpl-data-collector/internal/domain"
)

func TestDumpBootstrapWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	bootstrap := domain.Bootstrap{
		Teams:     []domain.Team{{ID: 1, Name: "Arsenal", ShortName: "ARS"}},
		Positions: []domain.Position{{ID: 1, Name: "Goalkeeper", ShortName: "GK"}},
		Players:   []domain.Player{{ID: 1, Name: "Raya", TeamID: 1, PositionID: 1}},
	}

	path, err := DumpBootstrap(dir, bootstrap)
	if err != nil {
		t.Fatalf("expected dump to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected dump file: %v", err)
	}
	var decoded domain.Bootstrap
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("expected valid JSON: %v", err)
	}
	if len(decoded.Players) != 1 || decoded.Players[0].Name != "Raya" {
		t.Fatalf("unexpected dump content: %+v", decoded)
	}
}

func TestDumpBootstrapIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	bootstrap := domain.Bootstrap{Teams: []domain.Team{{ID: 1, Name: "Arsenal"}}}

	path, err := DumpBootstrap(dir, bootstrap)
	if err != nil {
		t.Fatalf("first dump failed: %v", err)
	}
	first, _ := os.ReadFile(path)

	if _, err := DumpBootstrap(dir, bootstrap); err != nil {
		t.Fatalf("second dump failed: %v", err)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Fatalf("expected byte-identical dump on re-run")
	}
}
