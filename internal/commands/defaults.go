package commands

import "github.com/lookingglass-go/internal/query"

// builtinTargetFormatSpace 要求前缀 / 替换为空格的 NOS
var builtinTargetFormatSpace = []string{"huawei", "huawei_vrpv8"}

// builtinRESTNOS 默认走 REST API 的 NOS
var builtinRESTNOS = []string{"frr", "bird"}

// builtinTemplates 内置命令模板
//
// 占位符 {target}、{source}、{vrf} 在构造时替换。
var builtinTemplates = map[string]map[string]map[query.Type]string{
	"cisco_ios": {
		"ipv4_default": {
			query.TypePing:         "ping {target} repeat 5 source {source}",
			query.TypeTraceroute:   "traceroute {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp ipv4 unicast {target} | exclude pathid:|Epoch",
			query.TypeBGPCommunity: "show bgp ipv4 unicast community {target}",
			query.TypeBGPASPath:    "show bgp ipv4 unicast quote-regexp {target}",
		},
		"ipv4_vpn": {
			query.TypePing:         "ping vrf {vrf} {target} repeat 5 source {source}",
			query.TypeTraceroute:   "traceroute vrf {vrf} {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp vpnv4 unicast vrf {vrf} {target}",
			query.TypeBGPCommunity: "show bgp vpnv4 unicast vrf {vrf} community {target}",
			query.TypeBGPASPath:    "show bgp vpnv4 unicast vrf {vrf} quote-regexp {target}",
		},
		"ipv6_default": {
			query.TypePing:         "ping ipv6 {target} repeat 5 source {source}",
			query.TypeTraceroute:   "traceroute ipv6 {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp ipv6 unicast {target} | exclude pathid:|Epoch",
			query.TypeBGPCommunity: "show bgp ipv6 unicast community {target}",
			query.TypeBGPASPath:    "show bgp ipv6 unicast quote-regexp {target}",
		},
		"ipv6_vpn": {
			query.TypePing:         "ping vrf {vrf} {target} repeat 5 source {source}",
			query.TypeTraceroute:   "traceroute vrf {vrf} {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp vpnv6 unicast vrf {vrf} {target}",
			query.TypeBGPCommunity: "show bgp vpnv6 unicast vrf {vrf} community {target}",
			query.TypeBGPASPath:    "show bgp vpnv6 unicast vrf {vrf} quote-regexp {target}",
		},
	},
	"cisco_xr": {
		"ipv4_default": {
			query.TypePing:         "ping ipv4 {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute ipv4 {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp ipv4 unicast {target}",
			query.TypeBGPCommunity: "show bgp ipv4 unicast community {target}",
			query.TypeBGPASPath:    "show bgp ipv4 unicast regexp {target}",
		},
		"ipv4_vpn": {
			query.TypePing:         "ping vrf {vrf} {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute vrf {vrf} {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp vpnv4 unicast vrf {vrf} {target}",
			query.TypeBGPCommunity: "show bgp vpnv4 unicast vrf {vrf} community {target}",
			query.TypeBGPASPath:    "show bgp vpnv4 unicast vrf {vrf} regexp {target}",
		},
		"ipv6_default": {
			query.TypePing:         "ping ipv6 {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute ipv6 {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp ipv6 unicast {target}",
			query.TypeBGPCommunity: "show bgp ipv6 unicast community {target}",
			query.TypeBGPASPath:    "show bgp ipv6 unicast regexp {target}",
		},
		"ipv6_vpn": {
			query.TypePing:         "ping vrf {vrf} {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute vrf {vrf} {target} timeout 1 probe 2 source {source}",
			query.TypeBGPRoute:     "show bgp vpnv6 unicast vrf {vrf} {target}",
			query.TypeBGPCommunity: "show bgp vpnv6 unicast vrf {vrf} community {target}",
			query.TypeBGPASPath:    "show bgp vpnv6 unicast vrf {vrf} regexp {target}",
		},
	},
	"juniper": {
		"ipv4_default": {
			query.TypePing:         "ping inet {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute inet {target} wait 1 source {source}",
			query.TypeBGPRoute:     "show route protocol bgp table inet.0 {target} detail",
			query.TypeBGPCommunity: "show route protocol bgp table inet.0 community {target} detail",
			query.TypeBGPASPath:    "show route protocol bgp table inet.0 aspath-regex {target}",
		},
		"ipv4_vpn": {
			query.TypePing:         "ping inet routing-instance {vrf} {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute inet routing-instance {vrf} {target} wait 1 source {source}",
			query.TypeBGPRoute:     "show route protocol bgp table {vrf}.inet.0 {target} detail",
			query.TypeBGPCommunity: "show route protocol bgp table {vrf}.inet.0 community {target} detail",
			query.TypeBGPASPath:    "show route protocol bgp table {vrf}.inet.0 aspath-regex {target}",
		},
		"ipv6_default": {
			query.TypePing:         "ping inet6 {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute inet6 {target} wait 1 source {source}",
			query.TypeBGPRoute:     "show route protocol bgp table inet6.0 {target} detail",
			query.TypeBGPCommunity: "show route protocol bgp table inet6.0 community {target} detail",
			query.TypeBGPASPath:    "show route protocol bgp table inet6.0 aspath-regex {target}",
		},
		"ipv6_vpn": {
			query.TypePing:         "ping inet6 routing-instance {vrf} {target} count 5 source {source}",
			query.TypeTraceroute:   "traceroute inet6 routing-instance {vrf} {target} wait 1 source {source}",
			query.TypeBGPRoute:     "show route protocol bgp table {vrf}.inet6.0 {target} detail",
			query.TypeBGPCommunity: "show route protocol bgp table {vrf}.inet6.0 community {target} detail",
			query.TypeBGPASPath:    "show route protocol bgp table {vrf}.inet6.0 aspath-regex {target}",
		},
	},
	"arista_eos": {
		"ipv4_default": {
			query.TypePing:         "ping ip {target} source {source}",
			query.TypeTraceroute:   "traceroute ip {target} source {source}",
			query.TypeBGPRoute:     "show ip bgp {target}",
			query.TypeBGPCommunity: "show ip bgp community {target}",
			query.TypeBGPASPath:    "show ip bgp regexp {target}",
		},
		"ipv4_vpn": {
			query.TypePing:         "ping vrf {vrf} ip {target} source {source}",
			query.TypeTraceroute:   "traceroute vrf {vrf} ip {target} source {source}",
			query.TypeBGPRoute:     "show ip bgp {target} vrf {vrf}",
			query.TypeBGPCommunity: "show ip bgp community {target} vrf {vrf}",
			query.TypeBGPASPath:    "show ip bgp regexp {target} vrf {vrf}",
		},
		"ipv6_default": {
			query.TypePing:         "ping ipv6 {target} source {source}",
			query.TypeTraceroute:   "traceroute ipv6 {target} source {source}",
			query.TypeBGPRoute:     "show ipv6 bgp {target}",
			query.TypeBGPCommunity: "show ipv6 bgp community {target}",
			query.TypeBGPASPath:    "show ipv6 bgp regexp {target}",
		},
		"ipv6_vpn": {
			query.TypePing:         "ping vrf {vrf} ipv6 {target} source {source}",
			query.TypeTraceroute:   "traceroute vrf {vrf} ipv6 {target} source {source}",
			query.TypeBGPRoute:     "show ipv6 bgp {target} vrf {vrf}",
			query.TypeBGPCommunity: "show ipv6 bgp community {target} vrf {vrf}",
			query.TypeBGPASPath:    "show ipv6 bgp regexp {target} vrf {vrf}",
		},
	},
	"huawei": {
		"ipv4_default": {
			query.TypePing:         "ping -c 5 -a {source} {target}",
			query.TypeTraceroute:   "tracert -q 2 -f 1 -a {source} {target}",
			query.TypeBGPRoute:     "display bgp routing-table {target}",
			query.TypeBGPCommunity: "display bgp routing-table community {target}",
			query.TypeBGPASPath:    "display bgp routing-table regular-expression {target}",
		},
		"ipv4_vpn": {
			query.TypePing:         "ping -vpn-instance {vrf} -c 5 -a {source} {target}",
			query.TypeTraceroute:   "tracert -vpn-instance {vrf} -q 2 -f 1 -a {source} {target}",
			query.TypeBGPRoute:     "display bgp vpnv4 vpn-instance {vrf} routing-table {target}",
			query.TypeBGPCommunity: "display bgp vpnv4 vpn-instance {vrf} routing-table community {target}",
			query.TypeBGPASPath:    "display bgp vpnv4 vpn-instance {vrf} routing-table regular-expression {target}",
		},
		"ipv6_default": {
			query.TypePing:         "ping ipv6 -c 5 -a {source} {target}",
			query.TypeTraceroute:   "tracert ipv6 -q 2 -f 1 -a {source} {target}",
			query.TypeBGPRoute:     "display bgp ipv6 routing-table {target}",
			query.TypeBGPCommunity: "display bgp ipv6 routing-table community {target}",
			query.TypeBGPASPath:    "display bgp ipv6 routing-table regular-expression {target}",
		},
		"ipv6_vpn": {
			query.TypePing:         "ping ipv6 -vpn-instance {vrf} -c 5 -a {source} {target}",
			query.TypeTraceroute:   "tracert ipv6 -vpn-instance {vrf} -q 2 -f 1 -a {source} {target}",
			query.TypeBGPRoute:     "display bgp vpnv6 vpn-instance {vrf} routing-table {target}",
			query.TypeBGPCommunity: "display bgp vpnv6 vpn-instance {vrf} routing-table community {target}",
			query.TypeBGPASPath:    "display bgp vpnv6 vpn-instance {vrf} routing-table regular-expression {target}",
		},
	},
	"frr": {
		"ipv4_default": {
			query.TypePing:         "ping -4 -c 5 -I {source} {target}",
			query.TypeTraceroute:   "traceroute -4 -w 1 -q 1 -s {source} {target}",
			query.TypeBGPRoute:     "show bgp ipv4 unicast {target}",
			query.TypeBGPCommunity: "show bgp ipv4 unicast community {target}",
			query.TypeBGPASPath:    "show bgp ipv4 unicast regexp {target}",
		},
		"ipv4_vpn": {
			query.TypePing:         "ping -4 -c 5 -I {source} {target}",
			query.TypeTraceroute:   "traceroute -4 -w 1 -q 1 -s {source} {target}",
			query.TypeBGPRoute:     "show bgp vrf {vrf} ipv4 unicast {target}",
			query.TypeBGPCommunity: "show bgp vrf {vrf} ipv4 unicast community {target}",
			query.TypeBGPASPath:    "show bgp vrf {vrf} ipv4 unicast regexp {target}",
		},
		"ipv6_default": {
			query.TypePing:         "ping -6 -c 5 -I {source} {target}",
			query.TypeTraceroute:   "traceroute -6 -w 1 -q 1 -s {source} {target}",
			query.TypeBGPRoute:     "show bgp ipv6 unicast {target}",
			query.TypeBGPCommunity: "show bgp ipv6 unicast community {target}",
			query.TypeBGPASPath:    "show bgp ipv6 unicast regexp {target}",
		},
		"ipv6_vpn": {
			query.TypePing:         "ping -6 -c 5 -I {source} {target}",
			query.TypeTraceroute:   "traceroute -6 -w 1 -q 1 -s {source} {target}",
			query.TypeBGPRoute:     "show bgp vrf {vrf} ipv6 unicast {target}",
			query.TypeBGPCommunity: "show bgp vrf {vrf} ipv6 unicast community {target}",
			query.TypeBGPASPath:    "show bgp vrf {vrf} ipv6 unicast regexp {target}",
		},
	},
}
