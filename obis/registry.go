package obis

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-sml/sml"
)

// Info describes a well-known OBIS code.
type Info struct {
	Code Code   `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Unit Unit   `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Registry maps OBIS codes to descriptions. It is safe for concurrent use.
type Registry struct {
	entries *xsync.MapOf[Code, Info]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: xsync.NewMapOf[Code, Info]()}
}

// Register adds or replaces the description of info.Code.
func (r *Registry) Register(info Info) {
	r.entries.Store(info.Code, info)
}

// Unregister removes code from the registry.
func (r *Registry) Unregister(code Code) {
	r.entries.Delete(code)
}

// Lookup returns the description of code.
//
// If code itself is not registered, the entry with the same A to E groups and
// F = 255 is returned.
func (r *Registry) Lookup(code Code) (Info, bool) {
	if info, ok := r.entries.Load(code); ok {
		return info, true
	}
	if code[5] == 0xFF {
		return Info{}, false
	}

	wildcard := code
	wildcard[5] = 0xFF

	return r.entries.Load(wildcard)
}

// Name returns a display name for an object name: the registered name, else the
// textual code for six byte names, else the hex bytes.
func (r *Registry) Name(objName sml.OctetString) string {
	code, ok := FromOctetString(objName)
	if !ok {
		return objName.Hex()
	}
	if info, ok := r.Lookup(code); ok {
		return info.Name
	}

	return code.String()
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	return r.entries.Size()
}

// All returns all registered codes sorted by code.
func (r *Registry) All() []Info {
	infos := make([]Info, 0, r.entries.Size())
	r.entries.Range(func(_ Code, info Info) bool {
		infos = append(infos, info)
		return true
	})
	slices.SortFunc(infos, func(a, b Info) int {
		return slices.Compare(a.Code[:], b.Code[:])
	})

	return infos
}

// well-known codes of electricity meters
var wellKnown = []Info{
	{Code: New(1, 0, 1, 8, 0, 255), Name: "Positive active energy total", Unit: UnitWattHour},
	{Code: New(1, 0, 1, 8, 1, 255), Name: "Positive active energy tariff 1", Unit: UnitWattHour},
	{Code: New(1, 0, 1, 8, 2, 255), Name: "Positive active energy tariff 2", Unit: UnitWattHour},
	{Code: New(1, 0, 2, 8, 0, 255), Name: "Negative active energy total", Unit: UnitWattHour},
	{Code: New(1, 0, 2, 8, 1, 255), Name: "Negative active energy tariff 1", Unit: UnitWattHour},
	{Code: New(1, 0, 2, 8, 2, 255), Name: "Negative active energy tariff 2", Unit: UnitWattHour},
	{Code: New(1, 0, 16, 7, 0, 255), Name: "Active power total", Unit: UnitWatt},
	{Code: New(1, 0, 36, 7, 0, 255), Name: "Active power L1", Unit: UnitWatt},
	{Code: New(1, 0, 56, 7, 0, 255), Name: "Active power L2", Unit: UnitWatt},
	{Code: New(1, 0, 76, 7, 0, 255), Name: "Active power L3", Unit: UnitWatt},
	{Code: New(1, 0, 31, 7, 0, 255), Name: "Current L1", Unit: UnitAmpere},
	{Code: New(1, 0, 51, 7, 0, 255), Name: "Current L2", Unit: UnitAmpere},
	{Code: New(1, 0, 71, 7, 0, 255), Name: "Current L3", Unit: UnitAmpere},
	{Code: New(1, 0, 32, 7, 0, 255), Name: "Voltage L1", Unit: UnitVolt},
	{Code: New(1, 0, 52, 7, 0, 255), Name: "Voltage L2", Unit: UnitVolt},
	{Code: New(1, 0, 72, 7, 0, 255), Name: "Voltage L3", Unit: UnitVolt},
	{Code: New(1, 0, 14, 7, 0, 255), Name: "Frequency", Unit: UnitHertz},
	{Code: New(1, 0, 0, 0, 9, 255), Name: "Device identifier"},
	{Code: New(1, 0, 96, 1, 0, 255), Name: "Meter serial number"},
	{Code: New(1, 0, 96, 5, 0, 255), Name: "Operating status"},
	{Code: New(1, 0, 96, 50, 1, 1), Name: "Manufacturer identifier"},
	{Code: New(1, 0, 0, 2, 0, 0), Name: "Firmware version"},
	{Code: New(129, 129, 199, 130, 3, 255), Name: "Manufacturer"},
	{Code: New(129, 129, 199, 130, 5, 255), Name: "Public key"},
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, info := range wellKnown {
		r.Register(info)
	}

	return r
}

// Default returns the package registry, pre-populated with common electricity
// meter codes.
func Default() *Registry {
	return defaultRegistry
}

// Lookup looks up code in the default registry.
func Lookup(code Code) (Info, bool) {
	return defaultRegistry.Lookup(code)
}

// Name resolves objName through the default registry.
func Name(objName sml.OctetString) string {
	return defaultRegistry.Name(objName)
}
