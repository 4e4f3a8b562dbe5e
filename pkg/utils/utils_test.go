package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lookingglass-go/internal/query"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("edge1 bgp_route 192.0.2.0/24 CUSTOMER-A")
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Device != "edge1" {
		t.Errorf("Expected device edge1, got %q", req.Device)
	}
	if req.Query.Type != query.TypeBGPRoute {
		t.Errorf("Expected bgp_route, got %q", req.Query.Type)
	}
	if req.Query.Target != "192.0.2.0/24" {
		t.Errorf("Expected target 192.0.2.0/24, got %q", req.Query.Target)
	}
	if req.Query.VRF != "CUSTOMER-A" {
		t.Errorf("Expected vrf CUSTOMER-A, got %q", req.Query.VRF)
	}
}

func TestParseRequestDefaultVRF(t *testing.T) {
	req, err := ParseRequest("edge1 ping 192.0.2.10")
	if err != nil {
		t.Fatalf("ParseRequest failed: %v", err)
	}
	if req.Query.VRF != "default" {
		t.Errorf("Expected vrf default, got %q", req.Query.VRF)
	}
}

func TestParseRequestErrors(t *testing.T) {
	lines := []string{
		"edge1 ping",                          // 字段不足
		"edge1 ping 192.0.2.10 default extra", // 字段过多
		"edge1 dns 192.0.2.10",                // 未知查询类型
	}

	for _, line := range lines {
		if _, err := ParseRequest(line); err == nil {
			t.Errorf("ParseRequest(%q): expected error", line)
		}
	}
}

func TestLoadRequestsFromFile(t *testing.T) {
	content := `# 测试请求
edge1 ping 192.0.2.10

edge1 bgp_community 65000:100 CUSTOMER-A
rr1 bgp_route 2001:db8::/32
`
	path := filepath.Join(t.TempDir(), "requests.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	requests, err := LoadRequestsFromFile(path)
	if err != nil {
		t.Fatalf("LoadRequestsFromFile failed: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("Expected 3 requests, got %d", len(requests))
	}
	if requests[1].Query.VRF != "CUSTOMER-A" {
		t.Errorf("Expected vrf CUSTOMER-A, got %q", requests[1].Query.VRF)
	}
	if requests[2].Query.Type != query.TypeBGPRoute {
		t.Errorf("Expected bgp_route, got %q", requests[2].Query.Type)
	}
}

func TestLoadRequestsFromFileBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	if err := os.WriteFile(path, []byte("edge1 nope 192.0.2.10\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadRequestsFromFile(path); err == nil {
		t.Error("Expected error for bad request line")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	if FileExists(path) {
		t.Error("Expected false for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if !FileExists(path) {
		t.Error("Expected true for existing file")
	}
	if FileExists(dir) {
		t.Error("Expected false for directory")
	}
}
