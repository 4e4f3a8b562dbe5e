package construct

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"strings"

	"github.com/lookingglass-go/internal/commands"
	"github.com/lookingglass-go/internal/device"
	"github.com/lookingglass-go/internal/query"
	"github.com/lookingglass-go/pkg/logger"
)

// Payload REST 设备的结构化查询载荷
//
// 字段名是与下游设备 API 模块的线上契约，不可改名。
// bgp_route/bgp_community/bgp_aspath 不向 API 传源地址，Source 为 null。
type Payload struct {
	QueryType string  `json:"query_type"`
	VRF       string  `json:"vrf"`
	AFI       string  `json:"afi"`
	Source    *string `json:"source"`
	Target    string  `json:"target"`
}

// JSON 序列化载荷
func (p *Payload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// Artifact 构造产物
//
// CLI 传输时 Command 是可直接下发的命令字符串，API 传输时 Payload
// 是 JSON 可序列化对象。其余字段供传输层执行和结果归并层把多个
// 扇出产物关联回同一个逻辑查询。
type Artifact struct {
	QueryType string          `json:"query_type"`
	AFI       string          `json:"afi"`
	VRF       string          `json:"vrf"`
	Source    string          `json:"source,omitempty"`
	Target    string          `json:"target"`
	Transport query.Transport `json:"transport"`
	Command   string          `json:"command,omitempty"`
	Payload   *Payload        `json:"payload,omitempty"`
}

// Constructor 查询构造器
//
// 每个查询创建一个实例，构造完成后即丢弃。构造是纯同步计算，
// 多个实例可以并发使用，互不共享可变状态。
type Constructor struct {
	device    *device.Device
	query     query.Query
	transport query.Transport
	catalog   *commands.Catalog
	vrf       *device.VRF
}

// New 创建查询构造器
//
// 构造时解析查询 VRF，设备上没有匹配的 VRF 直接失败。
func New(dev *device.Device, q query.Query, transport query.Transport, catalog *commands.Catalog) (*Constructor, error) {
	logger.Debugf("Constructing %s query for %q on %s", q.Type, q.Target, dev.Name)

	vrf := dev.VRF(q.VRF)
	if vrf == nil {
		return nil, &VRFMismatchError{Device: dev.Name, VRF: q.VRF}
	}

	return &Constructor{
		device:    dev,
		query:     q,
		transport: transport,
		catalog:   catalog,
		vrf:       vrf,
	}, nil
}

// Build 按查询类型构造产物
func (c *Constructor) Build() ([]Artifact, error) {
	switch c.query.Type {
	case query.TypePing:
		return c.Ping()
	case query.TypeTraceroute:
		return c.Traceroute()
	case query.TypeBGPRoute:
		return c.BGPRoute()
	case query.TypeBGPCommunity:
		return c.BGPCommunity()
	case query.TypeBGPASPath:
		return c.BGPASPath()
	}
	return nil, fmt.Errorf("unsupported query type: %q", c.query.Type)
}

// Ping 构造 ping 命令
func (c *Constructor) Ping() ([]Artifact, error) {
	return c.single(query.TypePing)
}

// Traceroute 构造 traceroute 命令
func (c *Constructor) Traceroute() ([]Artifact, error) {
	return c.single(query.TypeTraceroute)
}

// BGPRoute 构造 BGP 路由查询命令
func (c *Constructor) BGPRoute() ([]Artifact, error) {
	return c.single(query.TypeBGPRoute)
}

// BGPCommunity 构造 BGP community 查询命令（按地址族扇出）
func (c *Constructor) BGPCommunity() ([]Artifact, error) {
	return c.fanOut(query.TypeBGPCommunity)
}

// BGPASPath 构造 BGP AS path 查询命令（按地址族扇出）
func (c *Constructor) BGPASPath() ([]Artifact, error) {
	return c.fanOut(query.TypeBGPASPath)
}

// single 构造单目标查询
//
// 地址族由目标的语法形式唯一确定，VRF 未启用该地址族是契约违反。
func (c *Constructor) single(qt query.Type) ([]Artifact, error) {
	family, err := TargetFamily(c.query.Target)
	if err != nil {
		return nil, err
	}

	afi := c.vrf.AFIFor(family)
	if afi == nil {
		return nil, &AFIMismatchError{
			Device: c.device.Name,
			VRF:    c.query.VRF,
			Family: family,
			Target: c.query.Target,
		}
	}

	art, err := c.artifact(qt, family, afi)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Constructed 1 %s artifact for %s", qt, c.device.Name)
	return []Artifact{art}, nil
}

// fanOut 构造按地址族扇出的查询
//
// 对 VRF 上启用的每个地址族各构造一条命令，ipv4 在 ipv6 之前。
// 未启用的地址族不产生产物，也不报错。
func (c *Constructor) fanOut(qt query.Type) ([]Artifact, error) {
	var artifacts []Artifact
	for _, family := range c.vrf.Families() {
		afi := c.vrf.AFIFor(family)
		art, err := c.artifact(qt, family, afi)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, art)
	}

	logger.Debugf("Constructed %d %s artifacts for %s", len(artifacts), qt, c.device.Name)
	return artifacts, nil
}

// artifact 构造单个产物
func (c *Constructor) artifact(qt query.Type, family string, afi *device.AFI) (Artifact, error) {
	category := CommandCategory(family, c.query.VRF)
	target := c.query.Target

	art := Artifact{
		QueryType: string(qt),
		AFI:       category,
		VRF:       afi.VRFName,
		Target:    target,
		Transport: c.transport,
	}

	switch c.transport {
	case query.TransportAPI:
		payload := &Payload{
			QueryType: string(qt),
			VRF:       afi.VRFName,
			AFI:       category,
			Target:    target,
		}
		// 仅 ping/traceroute 向 API 传源地址
		if qt == query.TypePing || qt == query.TypeTraceroute {
			source := afi.SourceAddress
			payload.Source = &source
			art.Source = source
		}
		art.Payload = payload

	default:
		tmpl, err := c.catalog.Lookup(c.device.NOS, category, qt)
		if err != nil {
			return Artifact{}, err
		}
		// 仅 CLI 前缀目标需要空格转义
		if qt == query.TypeBGPRoute && c.catalog.RequiresSpacedTarget(c.device.NOS) {
			target = strings.ReplaceAll(target, "/", " ")
			art.Target = target
		}
		art.Source = afi.SourceAddress
		art.Command = render(tmpl, target, afi.SourceAddress, afi.VRFName)
	}

	return art, nil
}

// render 渲染命令模板
func render(tmpl, target, source, vrf string) string {
	r := strings.NewReplacer(
		"{target}", target,
		"{source}", source,
		"{vrf}", vrf,
	)
	return r.Replace(tmpl)
}

// CommandCategory 派生命令类别
//
// 命名 VRF（非 "default"）走 VPN 语法，否则走全局表语法。
func CommandCategory(family, vrfName string) string {
	if vrfName != "" && vrfName != "default" {
		return family + "_vpn"
	}
	return family + "_default"
}

// TargetFamily 从目标的语法形式派生地址族
func TargetFamily(target string) (string, error) {
	if prefix, err := netip.ParsePrefix(target); err == nil {
		if prefix.Addr().Is4() {
			return device.FamilyIPv4, nil
		}
		return device.FamilyIPv6, nil
	}
	if addr, err := netip.ParseAddr(target); err == nil {
		if addr.Is4() {
			return device.FamilyIPv4, nil
		}
		return device.FamilyIPv6, nil
	}
	return "", fmt.Errorf("target %q is not an IP address or prefix", target)
}
