package api

import (
	"fmt"
	"time"

	"github.com/lookingglass-go/internal/commands"
	"github.com/lookingglass-go/internal/config"
	"github.com/lookingglass-go/internal/construct"
	"github.com/lookingglass-go/internal/core"
	"github.com/lookingglass-go/internal/device"
	"github.com/lookingglass-go/internal/query"
)

// Options 查询构造选项
type Options struct {
	Device    string
	Target    string
	VRF       string
	QueryType string
	Transport string // "cli"、"api" 或空（按 NOS 自动选择）
}

// GetDefaultOptions 获取默认选项
func GetDefaultOptions() *Options {
	return &Options{
		VRF:       "default",
		Transport: "",
	}
}

// Result 构造结果
type Result struct {
	Device        string               `json:"device"`
	NOS           string               `json:"nos,omitempty"`
	Artifacts     []construct.Artifact `json:"artifacts,omitempty"`
	ExecutionTime time.Duration        `json:"execution_time"`
	Error         string               `json:"error,omitempty"`
}

// LookingGlassAPI 库调用入口
type LookingGlassAPI struct {
	config    *config.Config
	inventory *device.Inventory
	catalog   *commands.Catalog
}

// NewLookingGlassAPI 创建 API 实例
func NewLookingGlassAPI() *LookingGlassAPI {
	return &LookingGlassAPI{
		config: config.GetConfig(),
	}
}

// load 加载设备清单和命令目录（只加载一次）
func (a *LookingGlassAPI) load() error {
	if a.inventory == nil {
		inv, err := device.Load(a.config.DevicesFile)
		if err != nil {
			return err
		}
		a.inventory = inv
	}
	if a.catalog == nil {
		cat, err := commands.Load(a.config.CommandsFile)
		if err != nil {
			return err
		}
		a.catalog = cat
	}
	return nil
}

// BuildQuery 为一个查询构造命令产物
func (a *LookingGlassAPI) BuildQuery(options *Options) (*Result, error) {
	start := time.Now()
	result := &Result{Device: options.Device}

	fail := func(err error) (*Result, error) {
		result.Error = err.Error()
		result.ExecutionTime = time.Since(start)
		return result, err
	}

	if options.Target == "" {
		return fail(fmt.Errorf("target is required"))
	}
	if options.Device == "" {
		return fail(fmt.Errorf("device is required"))
	}

	queryType, err := query.ParseType(options.QueryType)
	if err != nil {
		return fail(err)
	}

	var transport query.Transport
	if options.Transport != "" {
		transport, err = query.ParseTransport(options.Transport)
		if err != nil {
			return fail(err)
		}
	}

	if err := a.load(); err != nil {
		return fail(err)
	}

	vrf := options.VRF
	if vrf == "" {
		vrf = a.config.DefaultVRF
	}

	builder := core.NewBuilder(a.inventory, a.catalog, 1)
	res := builder.BuildOne(core.Request{
		Device: options.Device,
		Query: query.Query{
			Target: options.Target,
			VRF:    vrf,
			Type:   queryType,
		},
		Transport: transport,
	})
	if res.Err != nil {
		return fail(res.Err)
	}

	result.NOS = res.NOS
	result.Artifacts = res.Artifacts
	result.ExecutionTime = time.Since(start)
	return result, nil
}
