package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mlcgo/go-mlcrt/value"
)

// DeviceType is the native runtime's device-kind enumerant. The constants
// below mirror the native encoding exactly; a mismatch surfaces as a
// native-side device-selection error, not a bridge error.
type DeviceType int

const (
	DeviceCPU    DeviceType = 1
	DeviceCUDA   DeviceType = 4
	DeviceOpenCL DeviceType = 50
)

// String returns the canonical lowercase name, or "device(N)" for types the
// bridge does not know. Unknown types are valid: they are forward-compatible
// enumerants the native runtime may understand.
func (t DeviceType) String() string {
	switch t {
	case DeviceCPU:
		return "cpu"
	case DeviceCUDA:
		return "cuda"
	case DeviceOpenCL:
		return "opencl"
	default:
		return fmt.Sprintf("device(%d)", int(t))
	}
}

// Device identifies one execution device on the native side: a device type
// plus a zero-based index among devices of that type.
//
// Device is a plain comparable value: equality and map-key hashing are
// structural over (Type, ID). It identifies a native device but does not own
// it, so there is nothing to close.
type Device struct {
	Type DeviceType
	ID   int
}

// NewDevice constructs a device identifier. It is total: no validation is
// performed against the known type constants.
func NewDevice(t DeviceType, id int) Device {
	return Device{Type: t, ID: id}
}

// CPU returns the CPU device with the given index.
func CPU(id int) Device { return NewDevice(DeviceCPU, id) }

// CUDA returns the CUDA device with the given index.
func CUDA(id int) Device { return NewDevice(DeviceCUDA, id) }

// OpenCL returns the OpenCL device with the given index.
func OpenCL(id int) Device { return NewDevice(DeviceOpenCL, id) }

// String renders the device as "type:id", e.g. "opencl:0".
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Type, d.ID)
}

// Value boxes the device so it can cross the boundary as an argument or
// result.
func (d Device) Value() value.Value {
	return value.NewDevice(int64(d.Type), int64(d.ID))
}

// DeviceFromValue unboxes a device identifier. A non-Device variant fails
// with the value package's *TypeMismatchError.
func DeviceFromValue(v value.Value) (Device, error) {
	deviceType, id, err := v.AsDevice()
	if err != nil {
		return Device{}, err
	}
	return NewDevice(DeviceType(deviceType), int(id)), nil
}

// ParseDevice parses a "type:id" string as produced by Device.String.
// The type may be a known name ("cpu", "cuda", "opencl") or a raw enumerant
// number; the ":id" part defaults to 0 when omitted.
func ParseDevice(s string) (Device, error) {
	name, idStr, hasID := strings.Cut(s, ":")

	id := 0
	if hasID {
		var err error
		id, err = strconv.Atoi(idStr)
		if err != nil || id < 0 {
			return Device{}, errors.Errorf("invalid device index %q in %q", idStr, s)
		}
	}

	switch name {
	case "cpu":
		return CPU(id), nil
	case "cuda":
		return CUDA(id), nil
	case "opencl":
		return OpenCL(id), nil
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return Device{}, errors.Errorf("unknown device type %q in %q", name, s)
	}
	return NewDevice(DeviceType(n), id), nil
}
