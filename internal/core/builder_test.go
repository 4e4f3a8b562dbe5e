package core

import (
	"errors"
	"testing"

	"github.com/lookingglass-go/internal/commands"
	"github.com/lookingglass-go/internal/construct"
	"github.com/lookingglass-go/internal/device"
	"github.com/lookingglass-go/internal/query"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()

	inv, err := device.FromDevices([]device.Device{
		{
			Name: "edge1",
			NOS:  "cisco_ios",
			VRFs: []device.VRF{
				{
					Name: "default",
					IPv4: &device.AFI{VRFName: "default", SourceAddress: "192.0.2.1"},
					IPv6: &device.AFI{VRFName: "default", SourceAddress: "2001:db8::1"},
				},
			},
		},
		{
			Name: "rr1",
			NOS:  "frr",
			VRFs: []device.VRF{
				{
					Name: "default",
					IPv4: &device.AFI{VRFName: "default", SourceAddress: "192.0.2.3"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("FromDevices failed: %v", err)
	}

	return NewBuilder(inv, commands.Default(), 4)
}

func TestBuildOne(t *testing.T) {
	b := testBuilder(t)

	result := b.BuildOne(Request{
		Device: "edge1",
		Query:  query.Query{Target: "192.0.2.10", VRF: "default", Type: query.TypePing},
	})

	if result.Err != nil {
		t.Fatalf("BuildOne failed: %v", result.Err)
	}
	if result.NOS != "cisco_ios" {
		t.Errorf("Expected nos cisco_ios, got %q", result.NOS)
	}
	if len(result.Artifacts) != 1 {
		t.Errorf("Expected 1 artifact, got %d", len(result.Artifacts))
	}
	if result.Artifacts[0].Transport != query.TransportCLI {
		t.Errorf("Expected cli transport for cisco_ios, got %q", result.Artifacts[0].Transport)
	}
}

func TestBuildOneAutoTransport(t *testing.T) {
	b := testBuilder(t)

	// frr 默认走 API
	result := b.BuildOne(Request{
		Device: "rr1",
		Query:  query.Query{Target: "192.0.2.0/24", VRF: "default", Type: query.TypeBGPRoute},
	})

	if result.Err != nil {
		t.Fatalf("BuildOne failed: %v", result.Err)
	}
	if result.Artifacts[0].Transport != query.TransportAPI {
		t.Errorf("Expected api transport for frr, got %q", result.Artifacts[0].Transport)
	}
	if result.Artifacts[0].Payload == nil {
		t.Error("Expected API payload")
	}
}

func TestBuildOneExplicitTransport(t *testing.T) {
	b := testBuilder(t)

	// 显式传输覆盖自动选择
	result := b.BuildOne(Request{
		Device:    "rr1",
		Query:     query.Query{Target: "192.0.2.0/24", VRF: "default", Type: query.TypeBGPRoute},
		Transport: query.TransportCLI,
	})

	if result.Err != nil {
		t.Fatalf("BuildOne failed: %v", result.Err)
	}
	if result.Artifacts[0].Command == "" {
		t.Error("Expected CLI command")
	}
}

func TestBuildOneUnknownDevice(t *testing.T) {
	b := testBuilder(t)

	result := b.BuildOne(Request{
		Device: "nope",
		Query:  query.Query{Target: "192.0.2.10", VRF: "default", Type: query.TypePing},
	})

	if result.Err == nil {
		t.Fatal("Expected error for unknown device")
	}
	if result.Error == "" {
		t.Error("Expected error message in result")
	}
}

func TestBuildAll(t *testing.T) {
	b := testBuilder(t)

	requests := []Request{
		{Device: "edge1", Query: query.Query{Target: "192.0.2.10", VRF: "default", Type: query.TypePing}},
		{Device: "edge1", Query: query.Query{Target: "65000:100", VRF: "default", Type: query.TypeBGPCommunity}},
		{Device: "edge1", Query: query.Query{Target: "192.0.2.10", VRF: "NOPE", Type: query.TypePing}},
		{Device: "rr1", Query: query.Query{Target: "192.0.2.0/24", VRF: "default", Type: query.TypeBGPRoute}},
	}

	results := b.BuildAll(requests)
	if len(results) != len(requests) {
		t.Fatalf("Expected %d results, got %d", len(requests), len(results))
	}

	// 结果与请求按下标对应
	for i := range results {
		if results[i].Request.Device != requests[i].Device {
			t.Errorf("Result %d is for device %q, want %q", i, results[i].Request.Device, requests[i].Device)
		}
	}

	if results[0].Err != nil {
		t.Errorf("Request 0 failed: %v", results[0].Err)
	}
	if len(results[1].Artifacts) != 2 {
		t.Errorf("Expected 2 fan-out artifacts, got %d", len(results[1].Artifacts))
	}

	// 单个失败不影响其他请求
	var mismatch *construct.VRFMismatchError
	if !errors.As(results[2].Err, &mismatch) {
		t.Errorf("Expected VRFMismatchError for request 2, got %v", results[2].Err)
	}
	if results[3].Err != nil {
		t.Errorf("Request 3 failed: %v", results[3].Err)
	}
}
