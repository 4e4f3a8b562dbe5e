package core

import (
	"golang.org/x/sync/errgroup"

	"github.com/lookingglass-go/internal/commands"
	"github.com/lookingglass-go/internal/construct"
	"github.com/lookingglass-go/internal/device"
	"github.com/lookingglass-go/internal/query"
	"github.com/lookingglass-go/pkg/logger"
)

// Request 一次构造请求
//
// Transport 为空时按 NOS 自动选择。
type Request struct {
	Device    string          `json:"device"`
	Query     query.Query     `json:"query"`
	Transport query.Transport `json:"transport,omitempty"`
}

// Result 单个请求的构造结果
type Result struct {
	Request   Request              `json:"request"`
	NOS       string               `json:"nos,omitempty"`
	Artifacts []construct.Artifact `json:"artifacts,omitempty"`
	Err       error                `json:"-"`
	Error     string               `json:"error,omitempty"`
}

// Builder 批量构造器
//
// 构造本身是纯计算，各请求互不共享可变状态，可以安全并发。
type Builder struct {
	inventory   *device.Inventory
	catalog     *commands.Catalog
	concurrency int
}

// NewBuilder 创建批量构造器
func NewBuilder(inventory *device.Inventory, catalog *commands.Catalog, concurrency int) *Builder {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Builder{
		inventory:   inventory,
		catalog:     catalog,
		concurrency: concurrency,
	}
}

// BuildOne 为单个请求构造产物
func (b *Builder) BuildOne(req Request) Result {
	result := Result{Request: req}

	dev, err := b.inventory.Get(req.Device)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}
	result.NOS = dev.NOS

	transport := req.Transport
	if transport == "" {
		transport = b.catalog.TransportFor(dev.NOS)
	}

	constructor, err := construct.New(dev, req.Query, transport, b.catalog)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	artifacts, err := constructor.Build()
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	result.Artifacts = artifacts
	return result
}

// BuildAll 并发构造所有请求
//
// 单个请求的失败记录在对应结果里，不影响其他请求。
func (b *Builder) BuildAll(requests []Request) []Result {
	results := make([]Result, len(requests))

	g := new(errgroup.Group)
	g.SetLimit(b.concurrency)

	for i := range requests {
		i := i
		g.Go(func() error {
			results[i] = b.BuildOne(requests[i])
			return nil
		})
	}

	// worker 不返回错误，失败都落在各自的结果里
	g.Wait()

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
			logger.Warnf("Failed to build %s on %s: %v", results[i].Request.Query.Type, results[i].Request.Device, results[i].Err)
		}
	}
	logger.Infof("Built %d/%d requests", len(results)-failed, len(results))

	return results
}
