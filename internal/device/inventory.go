package device

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lookingglass-go/pkg/logger"
)

// Inventory 设备清单
type Inventory struct {
	devices map[string]*Device
	order   []string
}

// Load 从YAML文件加载设备清单
func Load(path string) (*Inventory, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read devices file %s: %v", path, err)
	}

	var devices []Device
	if err := v.UnmarshalKey("devices", &devices); err != nil {
		return nil, fmt.Errorf("failed to parse devices file %s: %v", path, err)
	}

	inv, err := FromDevices(devices)
	if err != nil {
		return nil, err
	}

	logger.Infof("Loaded %d devices from %s", len(inv.order), path)
	return inv, nil
}

// FromDevices 从设备列表构建清单并校验
//
// 重名设备和同一设备上的重名 VRF 都是配置错误，在加载阶段直接拒绝，
// 避免构造阶段出现静默覆盖。
func FromDevices(devices []Device) (*Inventory, error) {
	inv := &Inventory{
		devices: make(map[string]*Device),
		order:   make([]string, 0, len(devices)),
	}

	for i := range devices {
		dev := &devices[i]
		if dev.Name == "" {
			return nil, fmt.Errorf("device %d has no name", i)
		}
		if dev.NOS == "" {
			return nil, fmt.Errorf("device %q has no nos", dev.Name)
		}
		if _, exists := inv.devices[dev.Name]; exists {
			return nil, fmt.Errorf("duplicate device name %q", dev.Name)
		}

		if err := validateVRFs(dev); err != nil {
			return nil, err
		}

		inv.devices[dev.Name] = dev
		inv.order = append(inv.order, dev.Name)
	}

	return inv, nil
}

// validateVRFs 校验设备的 VRF 配置
func validateVRFs(dev *Device) error {
	if len(dev.VRFs) == 0 {
		return fmt.Errorf("device %q has no vrfs", dev.Name)
	}

	seen := make(map[string]bool)
	for i := range dev.VRFs {
		vrf := &dev.VRFs[i]
		if seen[vrf.Name] {
			return fmt.Errorf("duplicate vrf %q on device %q", vrf.Name, dev.Name)
		}
		seen[vrf.Name] = true

		// 至少启用一个地址族
		if vrf.IPv4 == nil && vrf.IPv6 == nil {
			return fmt.Errorf("vrf %q on device %q has no address families", vrf.Name, dev.Name)
		}
	}

	return nil
}

// Get 按名称获取设备
func (i *Inventory) Get(name string) (*Device, error) {
	dev, ok := i.devices[name]
	if !ok {
		return nil, fmt.Errorf("device %q is not in the inventory", name)
	}
	return dev, nil
}

// Names 返回设备名称列表（保持清单顺序）
func (i *Inventory) Names() []string {
	return i.order
}

// Len 返回设备数量
func (i *Inventory) Len() int {
	return len(i.order)
}
