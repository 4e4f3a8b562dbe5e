package query

import "fmt"

// Type 查询类型
type Type string

const (
	TypePing         Type = "ping"
	TypeTraceroute   Type = "traceroute"
	TypeBGPRoute     Type = "bgp_route"
	TypeBGPCommunity Type = "bgp_community"
	TypeBGPASPath    Type = "bgp_aspath"
)

// Types 所有支持的查询类型（固定顺序）
var Types = []Type{
	TypePing,
	TypeTraceroute,
	TypeBGPRoute,
	TypeBGPCommunity,
	TypeBGPASPath,
}

// ParseType 解析查询类型字符串
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unsupported query type: %q", s)
	}
	return t, nil
}

// Valid 检查查询类型是否有效
func (t Type) Valid() bool {
	switch t {
	case TypePing, TypeTraceroute, TypeBGPRoute, TypeBGPCommunity, TypeBGPASPath:
		return true
	}
	return false
}

// FanOut 检查查询类型是否需要按地址族扇出
//
// community 和 as-path 查询不携带 IP 目标，无法从目标推导地址族，
// 需要对 VRF 上启用的每个地址族各构造一条命令。
func (t Type) FanOut() bool {
	return t == TypeBGPCommunity || t == TypeBGPASPath
}

// IPTarget 检查查询目标是否为 IP 地址或前缀
func (t Type) IPTarget() bool {
	return t == TypePing || t == TypeTraceroute || t == TypeBGPRoute
}

// Transport 传输方式
type Transport string

const (
	// TransportCLI 通过 SSH 下发 CLI 命令字符串
	TransportCLI Transport = "cli"
	// TransportAPI 通过设备 REST API 下发结构化载荷
	TransportAPI Transport = "api"
)

// ParseTransport 解析传输方式字符串
func ParseTransport(s string) (Transport, error) {
	switch Transport(s) {
	case TransportCLI:
		return TransportCLI, nil
	case TransportAPI:
		return TransportAPI, nil
	}
	return "", fmt.Errorf("unsupported transport: %q", s)
}

// Query 已验证查询
//
// 上游验证阶段负责目标和 VRF 的语法校验，本包不做输入清洗。
type Query struct {
	Target string `mapstructure:"target" json:"target"`
	VRF    string `mapstructure:"vrf" json:"vrf"`
	Type   Type   `mapstructure:"type" json:"type"`
}

// String 返回查询的可读描述
func (q Query) String() string {
	return fmt.Sprintf("%s %q (vrf %s)", q.Type, q.Target, q.VRF)
}
