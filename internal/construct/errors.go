package construct

import "fmt"

// VRFMismatchError 请求的 VRF 未在设备上配置
//
// 这是面向用户的配置错误（所选设备上没有所选 VRF），不是瞬时故障。
type VRFMismatchError struct {
	Device string
	VRF    string
}

func (e *VRFMismatchError) Error() string {
	return fmt.Sprintf("vrf %q is not available on device %q", e.VRF, e.Device)
}

// AFIMismatchError 目标的地址族在所选 VRF 上未启用
//
// 仅针对单目标查询：用户显式指定了该地址族的目标，VRF 却不支持，
// 属于契约违反，必须报错而不是返回空产物。
type AFIMismatchError struct {
	Device string
	VRF    string
	Family string
	Target string
}

func (e *AFIMismatchError) Error() string {
	return fmt.Sprintf("vrf %q on device %q has no %s support for target %q", e.VRF, e.Device, e.Family, e.Target)
}
