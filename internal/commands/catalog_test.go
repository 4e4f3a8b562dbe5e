package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lookingglass-go/internal/query"
)

func TestDefaultCatalogLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		nos      string
		category string
		qt       query.Type
	}{
		{"cisco_ios", "ipv4_default", query.TypePing},
		{"cisco_ios", "ipv6_vpn", query.TypeBGPRoute},
		{"cisco_xr", "ipv4_vpn", query.TypeBGPCommunity},
		{"juniper", "ipv6_default", query.TypeBGPASPath},
		{"arista_eos", "ipv4_default", query.TypeTraceroute},
		{"huawei", "ipv4_vpn", query.TypeBGPRoute},
		{"frr", "ipv6_default", query.TypeBGPRoute},
	}

	for _, tt := range tests {
		tmpl, err := c.Lookup(tt.nos, tt.category, tt.qt)
		if err != nil {
			t.Errorf("Lookup(%s, %s, %s) failed: %v", tt.nos, tt.category, tt.qt, err)
			continue
		}
		if tmpl == "" {
			t.Errorf("Lookup(%s, %s, %s) returned empty template", tt.nos, tt.category, tt.qt)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	c := Default()

	tests := []struct {
		nos      string
		category string
		qt       query.Type
	}{
		{"vyos", "ipv4_default", query.TypePing},     // 未知 NOS
		{"bird", "ipv4_default", query.TypeBGPRoute}, // REST NOS 无 CLI 模板
		{"cisco_ios", "ipv4_bogus", query.TypePing},  // 未知命令类别
	}

	for _, tt := range tests {
		_, err := c.Lookup(tt.nos, tt.category, tt.qt)
		if err == nil {
			t.Errorf("Lookup(%s, %s, %s): expected error", tt.nos, tt.category, tt.qt)
			continue
		}

		var notFound *TemplateNotFoundError
		if !errors.As(err, &notFound) {
			t.Errorf("Expected TemplateNotFoundError, got %T: %v", err, err)
		}
	}
}

func TestRequiresSpacedTarget(t *testing.T) {
	c := Default()

	if !c.RequiresSpacedTarget("huawei") {
		t.Error("Expected huawei to require spaced target")
	}
	if !c.RequiresSpacedTarget("huawei_vrpv8") {
		t.Error("Expected huawei_vrpv8 to require spaced target")
	}
	if c.RequiresSpacedTarget("cisco_ios") {
		t.Error("Expected cisco_ios to not require spaced target")
	}
}

func TestTransportFor(t *testing.T) {
	c := Default()

	if c.TransportFor("frr") != query.TransportAPI {
		t.Error("Expected frr to default to api transport")
	}
	if c.TransportFor("bird") != query.TransportAPI {
		t.Error("Expected bird to default to api transport")
	}
	if c.TransportFor("cisco_ios") != query.TransportCLI {
		t.Error("Expected cisco_ios to default to cli transport")
	}
	if c.TransportFor("unknown_nos") != query.TransportCLI {
		t.Error("Expected unknown nos to default to cli transport")
	}
}

func TestLoadMissingFileUsesBuiltins(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := c.Lookup("cisco_ios", "ipv4_default", query.TypePing); err != nil {
		t.Errorf("Expected built-in template, got error: %v", err)
	}
}

func TestLoadEmptyPathUsesBuiltins(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(c.NOSNames()) == 0 {
		t.Error("Expected built-in NOS entries")
	}
}

func TestLoadOverlay(t *testing.T) {
	content := `
commands:
  cisco_ios:
    ipv4_default:
      bgp_route: "show bgp ipv4 unicast {target} bestpath"
  vyos:
    ipv4_default:
      bgp_route: "show ip bgp {target}"

target_format_space:
  - cisco_nxos

rest_nos:
  - gobgp
`
	path := filepath.Join(t.TempDir(), "commands.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// 覆盖已有模板
	tmpl, err := c.Lookup("cisco_ios", "ipv4_default", query.TypeBGPRoute)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if tmpl != "show bgp ipv4 unicast {target} bestpath" {
		t.Errorf("Expected overridden template, got %q", tmpl)
	}

	// 其余内置模板保留
	if _, err := c.Lookup("cisco_ios", "ipv4_default", query.TypePing); err != nil {
		t.Errorf("Expected built-in ping template to survive, got error: %v", err)
	}

	// 新增 NOS
	if _, err := c.Lookup("vyos", "ipv4_default", query.TypeBGPRoute); err != nil {
		t.Errorf("Expected new NOS template, got error: %v", err)
	}

	// 扩展 NOS 集合
	if !c.RequiresSpacedTarget("cisco_nxos") {
		t.Error("Expected cisco_nxos added to target_format_space")
	}
	if !c.RequiresSpacedTarget("huawei") {
		t.Error("Expected built-in target_format_space entries to survive")
	}
	if c.TransportFor("gobgp") != query.TransportAPI {
		t.Error("Expected gobgp added to rest_nos")
	}
}

func TestLoadRejectsUnknownQueryType(t *testing.T) {
	content := `
commands:
  cisco_ios:
    ipv4_default:
      dns_lookup: "nope {target}"
`
	path := filepath.Join(t.TempDir(), "commands.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown query type in commands file")
	}
}
