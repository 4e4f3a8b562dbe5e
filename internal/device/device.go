package device

// 地址族标识
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// AFI 地址族子记录
//
// VRFName 是下发给设备的路由表名，SourceAddress 是探测报文的源地址
// （可为空，部分查询类型不使用源地址）。
type AFI struct {
	VRFName       string `mapstructure:"vrf_name" json:"vrf_name"`
	SourceAddress string `mapstructure:"source_address" json:"source_address,omitempty"`
}

// VRF 设备上的一个路由实例
//
// 名称 "default" 表示全局路由表。IPv4/IPv6 子记录均可缺省，
// 一个 VRF 可以只启用单个地址族。
type VRF struct {
	Name string `mapstructure:"name" json:"name"`
	IPv4 *AFI   `mapstructure:"ipv4" json:"ipv4,omitempty"`
	IPv6 *AFI   `mapstructure:"ipv6" json:"ipv6,omitempty"`
}

// IsDefault 检查是否为全局路由表
func (v *VRF) IsDefault() bool {
	return v.Name == "" || v.Name == "default"
}

// AFIFor 获取指定地址族的子记录，未启用时返回 nil
func (v *VRF) AFIFor(family string) *AFI {
	switch family {
	case FamilyIPv4:
		return v.IPv4
	case FamilyIPv6:
		return v.IPv6
	}
	return nil
}

// Families 返回 VRF 上已启用的地址族（ipv4 在 ipv6 之前）
func (v *VRF) Families() []string {
	var families []string
	if v.IPv4 != nil {
		families = append(families, FamilyIPv4)
	}
	if v.IPv6 != nil {
		families = append(families, FamilyIPv6)
	}
	return families
}

// Device 网络设备
type Device struct {
	Name string `mapstructure:"name" json:"name"`
	NOS  string `mapstructure:"nos" json:"nos"`
	VRFs []VRF  `mapstructure:"vrfs" json:"vrfs"`
}

// VRF 按名称查找设备上配置的 VRF，未配置时返回 nil
//
// 清单加载阶段已拒绝重名 VRF，这里最多只有一个匹配。
func (d *Device) VRF(name string) *VRF {
	for i := range d.VRFs {
		if d.VRFs[i].Name == name {
			return &d.VRFs[i]
		}
	}
	return nil
}

// VRFNames 返回设备上配置的 VRF 名称列表
func (d *Device) VRFNames() []string {
	names := make([]string, 0, len(d.VRFs))
	for i := range d.VRFs {
		names = append(names, d.VRFs[i].Name)
	}
	return names
}
